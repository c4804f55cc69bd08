//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bloom-express/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	mustTime := func(h, m int) schedule.TimeOfDay {
		tod, err := schedule.NewTimeOfDay(h, m)
		require.NoError(t, err)
		return tod
	}

	assert.NoError(t, schedule.NewWindow(mustTime(14, 0), mustTime(15, 0)))
	assert.ErrorIs(t, schedule.NewWindow(mustTime(15, 0), mustTime(14, 0)), schedule.ErrInvalidWindow)
	assert.ErrorIs(t, schedule.NewWindow(mustTime(14, 0), mustTime(14, 0)), schedule.ErrInvalidWindow)
}

func TestBlockedIntervalCovers(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, phoenix)

	start, err := schedule.NewTimeOfDay(14, 0)
	require.NoError(t, err)
	end, err := schedule.NewTimeOfDay(15, 0)
	require.NoError(t, err)

	interval := schedule.BlockedInterval{Date: day, Start: start, End: end}

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "start boundary is covered", at: at(t, day, 14, 0), want: true},
		{name: "inside the window", at: at(t, day, 14, 30), want: true},
		{name: "end boundary is not covered", at: at(t, day, 15, 0), want: false},
		{name: "before the window", at: at(t, day, 13, 59), want: false},
		{name: "same wall time on another day", at: at(t, day.AddDate(0, 0, 1), 14, 30), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, interval.Covers(tc.at))
		})
	}
}

func TestFirstCovering(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, phoenix)

	build := func(startH, endH int, reason string) schedule.BlockedInterval {
		start, err := schedule.NewTimeOfDay(startH, 0)
		require.NoError(t, err)
		end, err := schedule.NewTimeOfDay(endH, 0)
		require.NoError(t, err)
		return schedule.BlockedInterval{Date: day, Start: start, End: end, Reason: &reason}
	}

	intervals := []schedule.BlockedInterval{
		build(14, 16, "first"),
		build(15, 17, "second"),
	}

	match, ok := schedule.FirstCovering(intervals, at(t, day, 15, 30))
	require.True(t, ok)
	assert.Equal(t, "first", *match.Reason)

	match, ok = schedule.FirstCovering(intervals, at(t, day, 16, 30))
	require.True(t, ok)
	assert.Equal(t, "second", *match.Reason)

	_, ok = schedule.FirstCovering(intervals, at(t, day, 17, 30))
	assert.False(t, ok)
}
