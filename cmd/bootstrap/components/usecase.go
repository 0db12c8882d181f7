package components

import (
	"clubvenue/internal/pkg/clock"
	"clubvenue/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			usecase.NewSessionManager,
			fx.As(new(usecase.DraftWorkflow)),
		),
		usecase.NewCatalogQueries,
	),
)
