//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (*fakeStore, *fakeGateway, commands.CheckoutCommands) {
	t.Helper()

	store := newFakeStore()
	store.zipcodes["85251"] = "Scottsdale"

	gateway := &fakeGateway{
		intent: &commands.PaymentIntent{ID: "pi_new", ClientSecret: "pi_new_secret"},
	}

	hours, err := schedule.NewHours(8, 20, 2, 30*time.Minute)
	require.NoError(t, err)

	cmds := commands.NewCheckoutCommands(&fakeUoW{store: store}, gateway, hours, phoenix)
	return store, gateway, cmds
}

func validParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		PackageType:      order.PackageTwoDozen,
		HasChocolates:    true,
		CardOccasion:     "anniversary",
		CardMessage:      "Happy anniversary!",
		CardSignature:    "J",
		RecipientName:    "Jamie Rivera",
		DeliveryAddress:  "400 N Scottsdale Rd",
		DeliveryCity:     "Scottsdale",
		DeliveryZipcode:  "85251",
		DeliveryTimeSlot: "2026-03-10 14:30",
		SenderName:       "Alex Chen",
		SenderPhone:      "480-555-0142",
		SenderEmail:      "alex@example.com",
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("creates a pending order with a payment intent", func(t *testing.T) {
		store, _, cmds := newCheckoutFixture(t)

		result, err := cmds.CreateOrder(context.Background(), validParams())
		require.NoError(t, err)
		assert.Equal(t, "pi_new_secret", result.ClientSecret)
		assert.NotEmpty(t, result.OrderNumber)

		require.Len(t, store.orders, 1)
		var created *order.Order
		for _, o := range store.orders {
			created = o
		}

		assert.Equal(t, order.PaymentPending, created.PaymentStatus)
		assert.Equal(t, order.StatusReceived, created.Status)
		assert.False(t, created.SlotReserved, "a pending order must not hold capacity")
		assert.Equal(t, "pi_new", created.PaymentIntentID)
		assert.Equal(t, int64(42900), created.PackagePrice)
		assert.Equal(t, int64(52800), created.Total)
		assert.Equal(t, "AZ", created.DeliveryState, "state defaults when omitted")
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, phoenix), created.DeliveryDate)

		assert.Empty(t, store.blackouts, "checkout must not touch the blackout registry")
	})

	t.Run("missing required field", func(t *testing.T) {
		_, _, cmds := newCheckoutFixture(t)
		params := validParams()
		params.RecipientName = "   "

		_, err := cmds.CreateOrder(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, _, cmds := newCheckoutFixture(t)
		params := validParams()
		params.PackageType = "5_dozen"

		_, err := cmds.CreateOrder(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrUnknownPackage)
	})

	t.Run("slot outside business hours", func(t *testing.T) {
		_, _, cmds := newCheckoutFixture(t)
		params := validParams()
		params.DeliveryTimeSlot = "2026-03-10 21:00"

		_, err := cmds.CreateOrder(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeSlot)
	})

	t.Run("zipcode outside the delivery area", func(t *testing.T) {
		_, _, cmds := newCheckoutFixture(t)
		params := validParams()
		params.DeliveryZipcode = "10001"

		_, err := cmds.CreateOrder(context.Background(), params)
		assert.ErrorIs(t, err, errs.ErrZipcodeNotServed)
	})

	t.Run("payment provider failure", func(t *testing.T) {
		store, gateway, cmds := newCheckoutFixture(t)
		gateway.createErr = errs.New("provider down")

		_, err := cmds.CreateOrder(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrUpstreamPayment)
		assert.Empty(t, store.orders, "no order without an intent")
	})
}
