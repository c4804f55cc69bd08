package queries

import (
	"context"
	"fmt"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/errs"
)

// ScheduleQueries is the order capacity ledger: the read-side projection of
// which orders occupy which delivery hours. It is display-only — public
// availability is governed solely by the blackout registry, since a paid
// order always carries a matching blackout.
type ScheduleQueries interface {
	GetDaySchedule(ctx context.Context, date time.Time) (*DayScheduleView, error)
}

type scheduleQueriesImpl struct {
	orders    OrderReadStore
	blackouts BlackoutReadStore
	hours     schedule.Hours
}

func NewScheduleQueries(orders OrderReadStore, blackouts BlackoutReadStore, hours schedule.Hours) ScheduleQueries {
	return &scheduleQueriesImpl{
		orders:    orders,
		blackouts: blackouts,
		hours:     hours,
	}
}

func (q *scheduleQueriesImpl) GetDaySchedule(ctx context.Context, date time.Time) (*DayScheduleView, error) {
	orders, err := q.orders.ListByDeliveryDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders for schedule")
	}

	intervals, err := q.blackouts.ListForDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list blocked time slots for schedule")
	}

	buckets := make(map[int][]OrderListItem)
	for _, item := range orders {
		hour, ok := slotHour(item.DeliveryTimeSlot)
		if !ok {
			continue
		}
		buckets[hour] = append(buckets[hour], item)
	}

	view := &DayScheduleView{
		Date:     date.Format("2006-01-02"),
		Blackout: ToBlackoutViews(intervals),
	}
	for hour := q.hours.Open; hour <= q.hours.Close; hour++ {
		view.Hours = append(view.Hours, ScheduleHourView{
			Hour:   hour,
			Label:  hourLabel(hour),
			Orders: buckets[hour],
		})
	}
	return view, nil
}

func slotHour(slot string) (int, bool) {
	t, err := time.Parse(schedule.SlotValueLayout, slot)
	if err != nil {
		return 0, false
	}
	return t.Hour(), true
}

func hourLabel(hour int) string {
	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, suffix)
}
