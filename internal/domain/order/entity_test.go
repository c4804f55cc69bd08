//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phoenix = time.FixedZone("MST", -7*3600)

func TestParseSlot(t *testing.T) {
	slot, err := order.ParseSlot("2026-03-10 17:00", phoenix)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 17, 0, 0, 0, phoenix), slot)

	_, err = order.ParseSlot("2026-03-10T17:00", phoenix)
	assert.ErrorIs(t, err, order.ErrInvalidSlot)

	_, err = order.ParseSlot("tomorrow at five", phoenix)
	assert.ErrorIs(t, err, order.ErrInvalidSlot)
}

func TestValidateSlot(t *testing.T) {
	hours, err := schedule.NewHours(8, 20, 2, 30*time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "mid-day slot", value: "2026-03-10 14:30"},
		{name: "opening slot", value: "2026-03-10 08:00"},
		{name: "closing slot is bookable", value: "2026-03-10 20:00"},
		{name: "before opening", value: "2026-03-10 07:30", errIs: order.ErrSlotOutsideHours},
		{name: "after closing", value: "2026-03-10 20:30", errIs: order.ErrSlotOutsideHours},
		{name: "unparseable", value: "not a slot", errIs: order.ErrInvalidSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.ValidateSlot(tc.value, hours, phoenix)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewNumber(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		number := order.NewNumber()

		require.True(t, strings.HasPrefix(number, "FL-"), "got %q", number)
		require.Len(t, number, 9)

		for _, r := range number[3:] {
			assert.NotContains(t, "01IO", string(r), "confusable character in %q", number)
		}

		seen[number] = struct{}{}
	}
	assert.Greater(t, len(seen), 95, "order numbers should be effectively unique")
}
