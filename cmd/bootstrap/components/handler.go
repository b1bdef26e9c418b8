package components

import (
	"barberbook/internal/handler"
	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCheckoutHandler,
		api.NewReportHandler,
		api.NewOwnerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
