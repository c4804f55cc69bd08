package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a local wall-clock time with minute precision, independent of
// any calendar date. Blackout windows are stored and compared with it.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS"; seconds are discarded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute, sec int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &sec); err != nil || n < 2 {
		if n, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil || n != 2 {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
	}
	return NewTimeOfDay(hour, minute)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

func (t TimeOfDay) Hour() int   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// String renders "HH:MM:SS" to line up with Postgres TIME literals.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// At pins the time of day onto a calendar day in that day's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
