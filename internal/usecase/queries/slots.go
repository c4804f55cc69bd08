package queries

import (
	"context"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/pkg/errs"
)

type BlackoutReadStore interface {
	ListForDate(ctx context.Context, date time.Time) ([]schedule.BlockedInterval, error)
	ListForDates(ctx context.Context, dates []time.Time) ([]schedule.BlockedInterval, error)
	ListAll(ctx context.Context) ([]schedule.BlockedInterval, error)
}

type SlotQueries interface {
	GetAvailableSlots(ctx context.Context) (*AvailableSlotsView, error)
}

type slotQueriesImpl struct {
	blackouts BlackoutReadStore
	hours     schedule.Hours
	clock     clock.Clock
}

func NewSlotQueries(blackouts BlackoutReadStore, hours schedule.Hours, clk clock.Clock) SlotQueries {
	return &slotQueriesImpl{
		blackouts: blackouts,
		hours:     hours,
		clock:     clk,
	}
}

// GetAvailableSlots is a pure function of the current time and blackout
// state: slots are derived fresh on every call, never stored.
func (q *slotQueriesImpl) GetAvailableSlots(ctx context.Context) (*AvailableSlotsView, error) {
	now := q.clock.Now()
	today := clock.Today(q.clock)
	tomorrow := today.AddDate(0, 0, 1)

	blocked, err := q.blackouts.ListForDates(ctx, []time.Time{today, tomorrow})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list blocked time slots")
	}

	todaySlots, tomorrowSlots := schedule.Generate(now, q.hours, blocked)

	return &AvailableSlotsView{
		Today:    toSlotViews(todaySlots),
		Tomorrow: toSlotViews(tomorrowSlots),
	}, nil
}

func toSlotViews(slots []schedule.CandidateSlot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			Value:       s.Value(),
			Label:       s.Label,
			Blocked:     s.Blocked,
			BlockReason: s.BlockReason,
		}
	}
	return views
}
