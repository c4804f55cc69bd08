package schedule

import "time"

// CandidateSlot is one offerable delivery start time. Derived on every query,
// never persisted.
type CandidateSlot struct {
	At          time.Time
	Label       string
	Blocked     bool
	BlockReason *string
}

// Value renders the slot the way orders store their chosen slot.
func (s CandidateSlot) Value() string {
	return s.At.Format(SlotValueLayout)
}

// SlotValueLayout is the combined date+time format used for the
// delivery_time_slot column and the public slot value field.
const SlotValueLayout = "2006-01-02 15:04"

const slotLabelLayout = "3:04 PM"

// Buffer window inserted around a reserved slot: the preceding half hour
// covers dispatch, the following full hour covers delivery and return. The
// widened window removes the adjacent half-hour slots from public view.
const (
	ReservationPreBuffer  = 30 * time.Minute
	ReservationPostBuffer = 60 * time.Minute
)

// ReservationWindow derives the blackout window committed when the order for
// slotTime is paid. End is exclusive.
func ReservationWindow(slotTime time.Time) (start, end time.Time) {
	return slotTime.Add(-ReservationPreBuffer), slotTime.Add(ReservationPostBuffer)
}

// Generate produces the offerable slots for today and tomorrow given the
// current instant and the blocked intervals for both dates. Today is empty
// when now is at or past the cutoff; before opening it falls back to the full
// run starting at open. Tomorrow is always generated in full.
//
// The walk is inclusive of closing time: the last bookable slot starts
// exactly at close. That is accepted business policy to maximize capacity,
// not an off-by-one.
func Generate(now time.Time, hours Hours, blocked []BlockedInterval) (today, tomorrow []CandidateSlot) {
	open, close := hours.Boundaries(now)

	switch {
	case hours.IsPastCutoff(now):
		// no same-day slots left
	case now.Before(open):
		today = walk(open, close, hours.Granularity, blocked)
	default:
		earliest := RoundUpToGranularity(now.Add(hours.Buffer), hours.Granularity)
		if earliest.Before(open) {
			earliest = open
		}
		today = walk(earliest, close, hours.Granularity, blocked)
	}

	nextDay := now.AddDate(0, 0, 1)
	openTomorrow, closeTomorrow := hours.Boundaries(nextDay)
	tomorrow = walk(openTomorrow, closeTomorrow, hours.Granularity, blocked)

	return today, tomorrow
}

// GenerateDay produces a full [open, close] run for an arbitrary day, used by
// admin schedule views.
func GenerateDay(day time.Time, hours Hours, blocked []BlockedInterval) []CandidateSlot {
	open, close := hours.Boundaries(day)
	return walk(open, close, hours.Granularity, blocked)
}

func walk(from, until time.Time, granularity time.Duration, blocked []BlockedInterval) []CandidateSlot {
	var slots []CandidateSlot
	for at := from; !at.After(until); at = at.Add(granularity) {
		slot := CandidateSlot{
			At:    at,
			Label: at.Format(slotLabelLayout),
		}
		if match, ok := FirstCovering(blocked, at); ok {
			slot.Blocked = true
			slot.BlockReason = match.Reason
		}
		slots = append(slots, slot)
	}
	return slots
}
