package components

import (
	"atelier-store/internal/handler"
	"atelier-store/internal/handler/api"
	"atelier-store/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewProductHandler,
		api.NewSweepHandler,
		api.NewPaymentWebhookHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
