package components

import (
	"clubvenue/internal/handler"
	"clubvenue/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewCatalogHandler,
	),
	fx.Invoke(handler.NewRouter),
)
