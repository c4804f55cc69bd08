package components

import (
	"bloom-express/internal/handler"
	"bloom-express/internal/handler/api"
	"bloom-express/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewOrderHandler,
		api.NewWebhookHandler,
		api.NewBlackoutHandler,
		api.NewAdminOrderHandler,
		api.NewZipcodeHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	slots *api.SlotHandler,
	orders *api.OrderHandler,
	webhooks *api.WebhookHandler,
	blackouts *api.BlackoutHandler,
	adminOrder *api.AdminOrderHandler,
	zipcodes *api.ZipcodeHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Slots:      slots,
		Orders:     orders,
		Webhooks:   webhooks,
		Blackouts:  blackouts,
		AdminOrder: adminOrder,
		Zipcodes:   zipcodes,
		Settings:   settings,
	}
}
