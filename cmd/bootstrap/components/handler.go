package components

import (
	"oficina-criativa/internal/handler"
	"oficina-criativa/internal/handler/api"
	"oficina-criativa/internal/handler/middleware"
	"oficina-criativa/internal/infra/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		metrics.New,
		api.NewWebhookHandler,
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewPurchaseHandler,
		api.NewDeliverableHandler,
		api.NewNotificationHandler,
		api.NewAnalyticsHandler,
		api.NewAssistantHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	webhook *api.WebhookHandler,
	auth *api.AuthHandler,
	product *api.ProductHandler,
	purchase *api.PurchaseHandler,
	deliverable *api.DeliverableHandler,
	notification *api.NotificationHandler,
	analytics *api.AnalyticsHandler,
	assistant *api.AssistantHandler,
) handler.Handlers {
	return handler.Handlers{
		Webhook:      webhook,
		Auth:         auth,
		Product:      product,
		Purchase:     purchase,
		Deliverable:  deliverable,
		Notification: notification,
		Analytics:    analytics,
		Assistant:    assistant,
	}
}
