package commands

import (
	"context"

	"bloom-express/internal/usecase/queries"
)

// PaymentIntent is what the payment provider hands back when an intent is
// created; the client secret goes straight to the browser.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type IntentStatus string

const (
	IntentSucceeded IntentStatus = "succeeded"
	IntentPending   IntentStatus = "pending"
	IntentFailed    IntentStatus = "failed"
	IntentCanceled  IntentStatus = "canceled"
)

// PaymentGateway is the payment-provider boundary. Its "payment succeeded"
// webhook may arrive more than once or not at all, which is why the polling
// fallback re-checks RetrieveIntentStatus.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*PaymentIntent, error)
	RetrieveIntentStatus(ctx context.Context, intentID string) (IntentStatus, error)
}

// NotificationSender delivers the post-reservation order event. Strictly
// fire-and-forget: failures are logged, never retried inline, and never roll
// back a reservation.
type NotificationSender interface {
	SendOrderPlaced(ctx context.Context, view *queries.OrderView) error
}
