package bootstrap

import (
	"clubvenue/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClientsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
