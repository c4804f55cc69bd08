//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phoenix = time.FixedZone("MST", -7*3600)

type fakeBlackoutReadStore struct {
	intervals []schedule.BlockedInterval
	gotDates  []time.Time
}

func (s *fakeBlackoutReadStore) ListForDate(_ context.Context, date time.Time) ([]schedule.BlockedInterval, error) {
	return s.ListForDates(context.Background(), []time.Time{date})
}

func (s *fakeBlackoutReadStore) ListForDates(_ context.Context, dates []time.Time) ([]schedule.BlockedInterval, error) {
	s.gotDates = dates
	return s.intervals, nil
}

func (s *fakeBlackoutReadStore) ListAll(context.Context) ([]schedule.BlockedInterval, error) {
	return s.intervals, nil
}

func TestGetAvailableSlots(t *testing.T) {
	hours, err := schedule.NewHours(8, 20, 2, 30*time.Minute)
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 10, 17, 0, 0, phoenix)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, phoenix)

	start, err := schedule.NewTimeOfDay(14, 0)
	require.NoError(t, err)
	end, err := schedule.NewTimeOfDay(15, 0)
	require.NoError(t, err)
	reason := "Order #FL-7KQ2MX"

	store := &fakeBlackoutReadStore{
		intervals: []schedule.BlockedInterval{
			{Date: day, Start: start, End: end, Reason: &reason},
		},
	}

	q := queries.NewSlotQueries(store, hours, clock.NewMockClock(now))

	view, err := q.GetAvailableSlots(context.Background())
	require.NoError(t, err)

	// both dates are fetched in one round trip
	require.Len(t, store.gotDates, 2)
	assert.Equal(t, day, store.gotDates[0])
	assert.Equal(t, day.AddDate(0, 0, 1), store.gotDates[1])

	require.NotEmpty(t, view.Today)
	assert.Equal(t, "2026-03-10 12:30", view.Today[0].Value)
	assert.Equal(t, "12:30 PM", view.Today[0].Label)

	byValue := make(map[string]queries.SlotView)
	for _, s := range view.Today {
		byValue[s.Value] = s
	}
	want := queries.SlotView{
		Value:       "2026-03-10 14:30",
		Label:       "2:30 PM",
		Blocked:     true,
		BlockReason: &reason,
	}
	if diff := cmp.Diff(want, byValue["2026-03-10 14:30"]); diff != "" {
		t.Errorf("blocked slot mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, view.Tomorrow, 25)
	for _, s := range view.Tomorrow {
		assert.False(t, s.Blocked, "tomorrow slot %s", s.Value)
	}
}
