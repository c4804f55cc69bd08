package schedule

import (
	"errors"
	"time"
)

var ErrInvalidHours = errors.New("invalid business hours")

// Hours is the shop's delivery window configuration. The business operates in
// a single local timezone, so all arithmetic is plain wall-clock math on
// whatever location the caller's instants carry.
type Hours struct {
	Open        int           // opening hour, e.g. 8
	Close       int           // closing hour, e.g. 20
	Buffer      time.Duration // minimum lead time between order and delivery
	Granularity time.Duration // slot spacing, 30 minutes in production
}

func NewHours(openHour, closeHour, bufferHours int, granularity time.Duration) (Hours, error) {
	h := Hours{
		Open:        openHour,
		Close:       closeHour,
		Buffer:      time.Duration(bufferHours) * time.Hour,
		Granularity: granularity,
	}
	if err := h.Validate(); err != nil {
		return Hours{}, err
	}
	return h, nil
}

func (h Hours) Validate() error {
	if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
		return ErrInvalidHours
	}
	if h.Buffer < 0 || h.Buffer >= time.Duration(h.Close-h.Open)*time.Hour {
		return ErrInvalidHours
	}
	if h.Granularity <= 0 {
		return ErrInvalidHours
	}
	return nil
}

// Boundaries returns the opening and closing instants for the given day.
func (h Hours) Boundaries(day time.Time) (open, close time.Time) {
	open = time.Date(day.Year(), day.Month(), day.Day(), h.Open, 0, 0, 0, day.Location())
	close = time.Date(day.Year(), day.Month(), day.Day(), h.Close, 0, 0, 0, day.Location())
	return open, close
}

// Cutoff is the last instant at which a same-day order can still be placed.
func (h Hours) Cutoff(day time.Time) time.Time {
	_, close := h.Boundaries(day)
	return close.Add(-h.Buffer)
}

// IsPastCutoff reports whether now is at or past the same-day order cutoff.
func (h Hours) IsPastCutoff(now time.Time) bool {
	return !now.Before(h.Cutoff(now))
}

// RoundUpToGranularity rounds t forward to the next slot boundary, measured
// from local midnight so the result stays on wall-clock boundaries regardless
// of zone offset. Instants already on a boundary are returned unchanged.
func RoundUpToGranularity(t time.Time, granularity time.Duration) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	elapsed := t.Sub(midnight)
	rounded := elapsed.Truncate(granularity)
	if rounded != elapsed {
		rounded += granularity
	}
	return midnight.Add(rounded)
}
