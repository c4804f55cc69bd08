//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"bloom-express/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHours(t *testing.T) {
	cases := []struct {
		name        string
		open, close int
		buffer      int
		granularity time.Duration
		wantErr     bool
	}{
		{name: "production configuration", open: 8, close: 20, buffer: 2, granularity: 30 * time.Minute},
		{name: "open after close", open: 20, close: 8, buffer: 2, granularity: 30 * time.Minute, wantErr: true},
		{name: "buffer swallows the whole day", open: 8, close: 10, buffer: 2, granularity: 30 * time.Minute, wantErr: true},
		{name: "negative buffer", open: 8, close: 20, buffer: -1, granularity: 30 * time.Minute, wantErr: true},
		{name: "zero granularity", open: 8, close: 20, buffer: 2, granularity: 0, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.NewHours(tc.open, tc.close, tc.buffer, tc.granularity)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCutoff(t *testing.T) {
	hours, err := schedule.NewHours(8, 20, 2, 30*time.Minute)
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, phoenix)

	assert.Equal(t, time.Date(2026, 3, 10, 18, 0, 0, 0, phoenix), hours.Cutoff(day))
	assert.False(t, hours.IsPastCutoff(time.Date(2026, 3, 10, 17, 59, 59, 0, phoenix)))
	assert.True(t, hours.IsPastCutoff(time.Date(2026, 3, 10, 18, 0, 0, 0, phoenix)))
	assert.True(t, hours.IsPastCutoff(time.Date(2026, 3, 10, 18, 0, 1, 0, phoenix)))
}

func TestRoundUpToGranularity(t *testing.T) {
	granularity := 30 * time.Minute

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already on a boundary stays put",
			in:   time.Date(2026, 3, 10, 12, 30, 0, 0, phoenix),
			want: time.Date(2026, 3, 10, 12, 30, 0, 0, phoenix),
		},
		{
			name: "one minute past rounds forward",
			in:   time.Date(2026, 3, 10, 12, 31, 0, 0, phoenix),
			want: time.Date(2026, 3, 10, 13, 0, 0, 0, phoenix),
		},
		{
			name: "seconds count as past the boundary",
			in:   time.Date(2026, 3, 10, 12, 30, 1, 0, phoenix),
			want: time.Date(2026, 3, 10, 13, 0, 0, 0, phoenix),
		},
		{
			name: "wall-clock boundaries hold in half-hour offset zones",
			in:   time.Date(2026, 3, 10, 12, 17, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: time.Date(2026, 3, 10, 12, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.RoundUpToGranularity(tc.in, granularity)
			assert.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
		})
	}
}
