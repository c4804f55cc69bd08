package api

import (
	"errors"
	"log/slog"
	"net/http"

	"bloom-express/internal/infra/payment"
	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	reservation commands.ReservationCommands
	verifier    *payment.Verifier
	clock       clock.Clock
}

func NewWebhookHandler(reservation commands.ReservationCommands, verifier *payment.Verifier, clk clock.Clock) *WebhookHandler {
	return &WebhookHandler{
		reservation: reservation,
		verifier:    verifier,
		clock:       clk,
	}
}

// @Summary Payment webhook
// @Description Receive payment lifecycle events from the payment provider.
// @Description Delivery is at-least-once; every branch is idempotent.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.verifier.Verify(payload, signature, h.clock.Now()); err != nil {
		slog.Warn("webhook signature verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	event, err := payment.ParseWebhookEvent(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event payload",
		})
		return
	}

	intentID := event.Data.Object.ID

	switch event.Type {
	case "payment_intent.succeeded":
		result, err := h.reservation.ConfirmPayment(c.Request.Context(), intentID)
		if err != nil {
			h.replyError(c, intentID, err)
			return
		}
		if result.Replayed {
			slog.Info("webhook replay ignored", "payment_intent_id", intentID)
		}
	case "payment_intent.payment_failed", "payment_intent.canceled":
		if err := h.reservation.FailPayment(c.Request.Context(), intentID); err != nil {
			h.replyError(c, intentID, err)
			return
		}
	default:
		// Unhandled event types are acknowledged so the provider stops
		// retrying them.
		slog.Debug("ignoring webhook event", "type", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}

func (h *WebhookHandler) replyError(c *gin.Context, intentID string, err error) {
	if errors.Is(err, errs.ErrOrderNotFound) {
		// No order for this intent; acknowledging avoids a retry storm over
		// an event this service can never act on.
		slog.Warn("webhook for unknown payment intent", "payment_intent_id", intentID)
		c.JSON(http.StatusOK, gin.H{"received": "true"})
		return
	}
	// A 500 makes the provider redeliver, which is safe because the
	// transition is idempotent.
	slog.Error("webhook processing failed", "payment_intent_id", intentID, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
