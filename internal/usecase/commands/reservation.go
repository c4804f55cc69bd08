package commands

import (
	"context"
	"log/slog"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/queries"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationCommands is the slot reservation coordinator. On payment
// success it converts an order's tentative slot choice into committed courier
// capacity: mark the order paid, claim the reservation flag, and insert a
// blackout covering the buffer window around the slot. The whole transition
// is idempotent because the payment provider delivers at least once and the
// polling fallback runs the same path.
type ReservationCommands interface {
	ConfirmPayment(ctx context.Context, paymentIntentID string) (*ConfirmResult, error)
	FailPayment(ctx context.Context, paymentIntentID string) error
	// ReconcilePayment is the poll-and-verify fallback: re-check the intent
	// with the provider and converge on the same effects as the webhook.
	ReconcilePayment(ctx context.Context, paymentIntentID string) error
}

type ConfirmResult struct {
	OrderID uuid.UUID
	// Replayed is true when a previous invocation already reserved the slot;
	// the repeat call changed nothing.
	Replayed bool
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier NotificationSender
	orders   queries.OrderQueries
	location *time.Location
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier NotificationSender,
	orders queries.OrderQueries,
	location *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		orders:   orders,
		location: location,
	}
}

func (c *reservationCommandsImpl) ConfirmPayment(ctx context.Context, paymentIntentID string) (*ConfirmResult, error) {
	var result ConfirmResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OrderByPaymentIntent(ctx, paymentIntentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result.OrderID = snap.ID

		switch snap.PaymentStatus {
		case order.PaymentPending:
			if _, err := tx.Orders().MarkPaid(ctx, paymentIntentID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		case order.PaymentPaid:
			// provider replay; the claim below resolves whether the block exists
		default:
			// The order already settled as failed or refunded. A success signal
			// arriving now is conflicting provider state; it must not grant
			// courier capacity to an order the customer was told failed.
			slog.Warn("ignoring success signal for settled order",
				"order_id", snap.ID,
				"order_number", snap.OrderNumber,
				"payment_status", snap.PaymentStatus,
			)
			result.Replayed = true
			return nil
		}

		// The reservation flag is the idempotency guard: exactly one
		// invocation wins the claim and inserts the capacity block.
		claimed, err := tx.Orders().ClaimSlotReservation(ctx, snap.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !claimed {
			result.Replayed = true
			return nil
		}

		return c.insertCapacityBlock(ctx, tx, snap)
	})
	if err != nil {
		return nil, err
	}

	if !result.Replayed {
		c.notifyOrderPlaced(ctx, result.OrderID)
	}

	return &result, nil
}

// insertCapacityBlock widens the committed slot by the dispatch/return buffer
// and records it in the blackout registry, removing the adjacent half-hour
// slots from public view.
func (c *reservationCommandsImpl) insertCapacityBlock(ctx context.Context, tx shared.Tx, snap *shared.OrderSnapshot) error {
	slotTime, err := order.ParseSlot(snap.DeliveryTimeSlot, c.location)
	if err != nil {
		// The order is paid but its slot cannot be blocked. Roll everything
		// back so a corrected retry can converge; this must never pass
		// silently.
		slog.Error("capacity integrity violation: unparseable delivery slot on paid order",
			"order_id", snap.ID,
			"order_number", snap.OrderNumber,
			"delivery_time_slot", snap.DeliveryTimeSlot,
		)
		return errs.Mark(err, errs.ErrCapacityIntegrity)
	}

	blockStart, blockEnd := schedule.ReservationWindow(slotTime)
	reason := "Order #" + snap.OrderNumber

	interval := schedule.BlockedInterval{
		Date:      midnightOf(slotTime),
		Start:     schedule.TimeOfDayOf(blockStart),
		End:       schedule.TimeOfDayOf(blockEnd),
		Reason:    &reason,
		CreatedBy: "system",
	}

	if _, err := tx.Blackouts().Create(ctx, interval); err != nil {
		slog.Error("capacity integrity violation: block insert failed for paid order",
			"order_id", snap.ID,
			"order_number", snap.OrderNumber,
			"error", err,
		)
		return errs.Mark(err, errs.ErrCapacityIntegrity)
	}

	return nil
}

func (c *reservationCommandsImpl) FailPayment(ctx context.Context, paymentIntentID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Orders().MarkFailed(ctx, paymentIntentID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) ReconcilePayment(ctx context.Context, paymentIntentID string) error {
	snap, err := c.uow.CommandReads().OrderByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOrderNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if snap.PaymentStatus != order.PaymentPending {
		return nil
	}

	status, err := c.gateway.RetrieveIntentStatus(ctx, paymentIntentID)
	if err != nil {
		// Leave the order as-is; the webhook or a later poll will settle it.
		return errs.Mark(err, errs.ErrUpstreamPayment)
	}

	switch status {
	case IntentSucceeded:
		_, err := c.ConfirmPayment(ctx, paymentIntentID)
		return err
	case IntentFailed, IntentCanceled:
		return c.FailPayment(ctx, paymentIntentID)
	default:
		return nil
	}
}

// notifyOrderPlaced is fire-and-forget: a delivery failure is logged and the
// reservation stands. Support staff can replay unnotified orders by hand.
func (c *reservationCommandsImpl) notifyOrderPlaced(ctx context.Context, orderID uuid.UUID) {
	view, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		slog.Error("failed to load order for notification", "order_id", orderID, "error", err)
		return
	}
	if view.Notified {
		return
	}

	if err := c.notifier.SendOrderPlaced(ctx, view); err != nil {
		slog.Error("order notification delivery failed", "order_id", orderID, "error", err)
		return
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().MarkNotified(ctx, orderID)
	})
	if err != nil {
		slog.Warn("failed to mark order notified", "order_id", orderID, "error", err)
	}
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
