package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("window end must be after start")

// BlockedInterval is an admin- or system-declared range of unavailable time on
// a single calendar date. End is exclusive. Intervals are never mutated in
// place; changing one means delete and recreate. Overlapping intervals are
// allowed and evaluate as a union.
type BlockedInterval struct {
	ID        uuid.UUID
	Date      time.Time // local midnight of the blocked day
	Start     TimeOfDay
	End       TimeOfDay
	Reason    *string
	CreatedBy string
	CreatedAt time.Time
}

// NewWindow validates a prospective blackout window.
func NewWindow(start, end TimeOfDay) error {
	if !start.Before(end) {
		return ErrInvalidWindow
	}
	return nil
}

// Covers reports whether the instant falls inside the interval. The date must
// match and start <= t < end on the wall clock.
func (b BlockedInterval) Covers(t time.Time) bool {
	if !sameDate(b.Date, t) {
		return false
	}
	tod := TimeOfDayOf(t)
	return !tod.Before(b.Start) && tod.Before(b.End)
}

// FirstCovering returns the first interval covering t, honoring the slice
// order (callers list intervals sorted by start time ascending).
func FirstCovering(intervals []BlockedInterval, t time.Time) (BlockedInterval, bool) {
	for _, b := range intervals {
		if b.Covers(t) {
			return b, true
		}
	}
	return BlockedInterval{}, false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
