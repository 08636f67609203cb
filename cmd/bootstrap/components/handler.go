package components

import (
	"lunchmate/internal/handler"
	"lunchmate/internal/handler/api"
	"lunchmate/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewOrderHandler,
		api.NewWeekHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
