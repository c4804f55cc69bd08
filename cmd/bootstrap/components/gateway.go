package components

import (
	"bloom-express/internal/infra/notify"
	"bloom-express/internal/infra/payment"
	"bloom-express/internal/pkg/config"
	"bloom-express/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentClient,
			fx.As(new(commands.PaymentGateway)),
		),
		NewWebhookVerifier,
		fx.Annotate(
			NewNotificationSender,
			fx.As(new(commands.NotificationSender)),
		),
	),
)

func NewPaymentClient(cfg config.Config) *payment.Client {
	return payment.NewClient(cfg.Payment)
}

func NewWebhookVerifier(cfg config.Config) *payment.Verifier {
	return payment.NewVerifier(cfg.Payment.WebhookSecret, cfg.Payment.WebhookTolerance)
}

func NewNotificationSender(cfg config.Config) *notify.WebhookSender {
	return notify.NewWebhookSender(cfg.Notify)
}
