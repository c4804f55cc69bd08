package notify

import (
	"context"
	"log/slog"

	"bloom-express/internal/pkg/config"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"github.com/go-resty/resty/v2"
)

// WebhookSender posts the full order payload to the shop's notification
// webhook (email relay, Slack bridge, whatever ops points it at). With no URL
// configured it degrades to a logged no-op so local development never blocks
// on it.
type WebhookSender struct {
	http *resty.Client
	url  string
}

func NewWebhookSender(cfg config.NotifyConfig) *WebhookSender {
	httpClient := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &WebhookSender{http: httpClient, url: cfg.OrderWebhookURL}
}

var _ commands.NotificationSender = (*WebhookSender)(nil)

func (s *WebhookSender) SendOrderPlaced(ctx context.Context, view *queries.OrderView) error {
	if s.url == "" {
		slog.Info("notification webhook not configured, skipping", "order_number", view.OrderNumber)
		return nil
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"event": "order.placed",
			"order": view,
		}).
		Post(s.url)
	if err != nil {
		return errs.Wrap(err, "notification request failed")
	}
	if resp.IsError() {
		return errs.New("notification webhook returned " + resp.Status())
	}
	return nil
}
