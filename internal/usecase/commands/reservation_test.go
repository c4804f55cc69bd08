//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phoenix = time.FixedZone("MST", -7*3600)

func newReservationFixture() (*fakeStore, *fakeGateway, *fakeNotifier, commands.ReservationCommands) {
	store := newFakeStore()
	gateway := &fakeGateway{}
	notifier := &fakeNotifier{}
	cmds := commands.NewReservationCommands(
		&fakeUoW{store: store},
		gateway,
		notifier,
		&fakeOrderQueries{store: store},
		phoenix,
	)
	return store, gateway, notifier, cmds
}

func pendingOrder(store *fakeStore, intentID, slot string) *order.Order {
	return store.addOrder(&order.Order{
		OrderNumber:      "FL-7KQ2MX",
		DeliveryTimeSlot: slot,
		PaymentIntentID:  intentID,
		PaymentStatus:    order.PaymentPending,
		Status:           order.StatusReceived,
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("first confirmation reserves the slot", func(t *testing.T) {
		store, _, notifier, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")

		result, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.Equal(t, o.ID, result.OrderID)
		assert.False(t, result.Replayed)

		assert.Equal(t, order.PaymentPaid, o.PaymentStatus)
		assert.True(t, o.SlotReserved)

		// 17:00 slot blocks 16:30 through 18:00 on the delivery date
		require.Len(t, store.blackouts, 1)
		block := store.blackouts[0]
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, phoenix), block.Date)
		assert.Equal(t, "16:30:00", block.Start.String())
		assert.Equal(t, "18:00:00", block.End.String())
		require.NotNil(t, block.Reason)
		assert.Equal(t, "Order #FL-7KQ2MX", *block.Reason)
		assert.Equal(t, "system", block.CreatedBy)

		assert.Equal(t, []string{"FL-7KQ2MX"}, notifier.sent)
		assert.True(t, o.Notified)
	})

	t.Run("replayed confirmation changes nothing", func(t *testing.T) {
		store, _, notifier, cmds := newReservationFixture()
		pendingOrder(store, "pi_123", "2026-03-10 17:00")

		_, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		require.NoError(t, err)

		result, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.True(t, result.Replayed)

		assert.Len(t, store.blackouts, 1, "replay must not add a second block")
		assert.Len(t, notifier.sent, 1, "replay must not re-notify")
	})

	t.Run("late success signal for a failed order grants nothing", func(t *testing.T) {
		store, _, notifier, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		o.PaymentStatus = order.PaymentFailed

		result, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.True(t, result.Replayed)

		assert.Equal(t, order.PaymentFailed, o.PaymentStatus)
		assert.False(t, o.SlotReserved)
		assert.Empty(t, store.blackouts)
		assert.Empty(t, notifier.sent)
	})

	t.Run("unknown payment intent", func(t *testing.T) {
		_, _, _, cmds := newReservationFixture()

		_, err := cmds.ConfirmPayment(context.Background(), "pi_missing")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("block insert failure surfaces as capacity integrity error", func(t *testing.T) {
		store, _, notifier, cmds := newReservationFixture()
		pendingOrder(store, "pi_123", "2026-03-10 17:00")
		store.blackoutCreateErr = errs.New("insert failed")

		_, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		assert.ErrorIs(t, err, errs.ErrCapacityIntegrity)
		assert.Empty(t, store.blackouts)
		assert.Empty(t, notifier.sent, "a failed reservation must not notify")
	})

	t.Run("unparseable stored slot surfaces as capacity integrity error", func(t *testing.T) {
		store, _, _, cmds := newReservationFixture()
		pendingOrder(store, "pi_123", "garbage")

		_, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		assert.ErrorIs(t, err, errs.ErrCapacityIntegrity)
		assert.Empty(t, store.blackouts)
	})

	t.Run("notification failure does not undo the reservation", func(t *testing.T) {
		store, _, notifier, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		notifier.sendErr = errs.New("webhook down")

		_, err := cmds.ConfirmPayment(context.Background(), "pi_123")
		require.NoError(t, err)

		assert.True(t, o.SlotReserved)
		assert.Len(t, store.blackouts, 1)
		assert.False(t, o.Notified)
	})
}

func TestFailPayment(t *testing.T) {
	store, _, _, cmds := newReservationFixture()
	o := pendingOrder(store, "pi_123", "2026-03-10 17:00")

	require.NoError(t, cmds.FailPayment(context.Background(), "pi_123"))
	assert.Equal(t, order.PaymentFailed, o.PaymentStatus)

	// a settled order is left alone
	o.PaymentStatus = order.PaymentPaid
	require.NoError(t, cmds.FailPayment(context.Background(), "pi_123"))
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus)
}

func TestReconcilePayment(t *testing.T) {
	t.Run("succeeded intent converges on the webhook effects", func(t *testing.T) {
		store, gateway, notifier, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		gateway.status = commands.IntentSucceeded

		require.NoError(t, cmds.ReconcilePayment(context.Background(), "pi_123"))

		assert.Equal(t, order.PaymentPaid, o.PaymentStatus)
		assert.True(t, o.SlotReserved)
		assert.Len(t, store.blackouts, 1)
		assert.Len(t, notifier.sent, 1)
	})

	t.Run("failed intent marks the order failed", func(t *testing.T) {
		store, gateway, _, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		gateway.status = commands.IntentFailed

		require.NoError(t, cmds.ReconcilePayment(context.Background(), "pi_123"))
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus)
		assert.Empty(t, store.blackouts)
	})

	t.Run("settled order skips the provider entirely", func(t *testing.T) {
		store, gateway, _, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		o.PaymentStatus = order.PaymentPaid

		require.NoError(t, cmds.ReconcilePayment(context.Background(), "pi_123"))
		assert.Zero(t, gateway.statusCalls)
	})

	t.Run("still pending at the provider leaves the order pending", func(t *testing.T) {
		store, gateway, _, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		gateway.status = commands.IntentPending

		require.NoError(t, cmds.ReconcilePayment(context.Background(), "pi_123"))
		assert.Equal(t, order.PaymentPending, o.PaymentStatus)
	})

	t.Run("provider error is marked as upstream", func(t *testing.T) {
		store, gateway, _, cmds := newReservationFixture()
		o := pendingOrder(store, "pi_123", "2026-03-10 17:00")
		gateway.statusErr = errs.New("timeout")

		err := cmds.ReconcilePayment(context.Background(), "pi_123")
		assert.ErrorIs(t, err, errs.ErrUpstreamPayment)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus)
	})
}
