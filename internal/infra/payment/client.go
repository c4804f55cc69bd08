package payment

import (
	"context"
	"encoding/json"
	"strconv"

	"bloom-express/internal/pkg/config"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
)

// Client talks to the Stripe-compatible payment API. Requests are
// form-encoded per the provider's convention; only the handful of fields the
// checkout flow needs are modeled.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.SecretKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &Client{http: httpClient}
}

var _ commands.PaymentGateway = (*Client)(nil)

type intentResponse struct {
	ID               string          `json:"id"`
	ClientSecret     string          `json:"client_secret"`
	Status           string          `json:"status"`
	LastPaymentError json.RawMessage `json:"last_payment_error"`
}

func (r intentResponse) hasPaymentError() bool {
	return len(r.LastPaymentError) > 0 && string(r.LastPaymentError) != "null"
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*commands.PaymentIntent, error) {
	form := map[string]string{
		"amount":                             strconv.FormatInt(amountCents, 10),
		"currency":                           "usd",
		"automatic_payment_methods[enabled]": "true",
	}
	for k, v := range metadata {
		form["metadata["+k+"]"] = v
	}

	var (
		intent intentResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&intent).
		SetError(&apiErr).
		Post("/payment_intents")
	if err != nil {
		return nil, errs.Wrap(err, "payment intent request failed")
	}
	if resp.IsError() {
		return nil, errs.New("payment intent rejected: " + apiErr.Error.Message)
	}

	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (c *Client) RetrieveIntentStatus(ctx context.Context, intentID string) (commands.IntentStatus, error) {
	var (
		intent intentResponse
		apiErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&intent).
		SetError(&apiErr).
		Get("/payment_intents/" + intentID)
	if err != nil {
		return "", errs.Wrap(err, "payment intent lookup failed")
	}
	if resp.IsError() {
		return "", errs.New("payment intent lookup rejected: " + apiErr.Error.Message)
	}

	return mapIntentStatus(intent), nil
}

// mapIntentStatus folds the provider's fine-grained lifecycle into the four
// outcomes the reservation coordinator acts on. A declined attempt is parked
// back at requires_payment_method with last_payment_error set, so that
// combination reads as a failure rather than a pending intent.
func mapIntentStatus(intent intentResponse) commands.IntentStatus {
	switch intent.Status {
	case "succeeded":
		return commands.IntentSucceeded
	case "canceled":
		return commands.IntentCanceled
	case "requires_payment_method":
		if intent.hasPaymentError() {
			return commands.IntentFailed
		}
		return commands.IntentPending
	default:
		return commands.IntentPending
	}
}

// WebhookEvent is the subset of the provider's event envelope the webhook
// endpoint consumes.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errs.Wrap(err, "failed to parse webhook event")
	}
	return &event, nil
}
