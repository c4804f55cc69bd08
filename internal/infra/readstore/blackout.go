package readstore

import (
	"context"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const listBlackoutsForDatesQuery = `
	SELECT id, block_date, start_time::text, end_time::text, reason, created_by, created_at
	FROM blocked_time_slots
	WHERE block_date = ANY($1::date[])
	ORDER BY block_date, start_time`

const listAllBlackoutsQuery = `
	SELECT id, block_date, start_time::text, end_time::text, reason, created_by, created_at
	FROM blocked_time_slots
	ORDER BY block_date, start_time`

// BlackoutReadStore serves the evaluation side of the blackout registry.
// Intervals come back sorted by start time so first-match reason attribution
// is deterministic.
type BlackoutReadStore struct {
	db       db.DBTX
	location *time.Location
}

func NewBlackoutReadStore(dbtx db.DBTX, location *time.Location) *BlackoutReadStore {
	return &BlackoutReadStore{db: dbtx, location: location}
}

var _ queries.BlackoutReadStore = (*BlackoutReadStore)(nil)

func (s *BlackoutReadStore) ListForDate(ctx context.Context, date time.Time) ([]schedule.BlockedInterval, error) {
	return s.ListForDates(ctx, []time.Time{date})
}

func (s *BlackoutReadStore) ListForDates(ctx context.Context, dates []time.Time) ([]schedule.BlockedInterval, error) {
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.Format("2006-01-02")
	}

	rows, err := s.db.Query(ctx, listBlackoutsForDatesQuery, keys)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocked time slots", err)
	}
	return s.scanIntervals(rows)
}

func (s *BlackoutReadStore) ListAll(ctx context.Context) ([]schedule.BlockedInterval, error) {
	rows, err := s.db.Query(ctx, listAllBlackoutsQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocked time slots", err)
	}
	return s.scanIntervals(rows)
}

func (s *BlackoutReadStore) scanIntervals(rows pgx.Rows) ([]schedule.BlockedInterval, error) {
	defer rows.Close()

	var intervals []schedule.BlockedInterval
	for rows.Next() {
		var (
			b          schedule.BlockedInterval
			blockDate  time.Time
			start, end string
		)
		if err := rows.Scan(&b.ID, &blockDate, &start, &end, &b.Reason, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked time slot", err)
		}

		// DATE columns scan without a zone; rebuild local midnight so interval
		// membership checks compare against wall-clock slot times.
		b.Date = time.Date(blockDate.Year(), blockDate.Month(), blockDate.Day(), 0, 0, 0, 0, s.location)

		var err error
		if b.Start, err = schedule.ParseTimeOfDay(start); err != nil {
			return nil, infra.WrapRepoErr("failed to parse block start time", err)
		}
		if b.End, err = schedule.ParseTimeOfDay(end); err != nil {
			return nil, infra.WrapRepoErr("failed to parse block end time", err)
		}

		intervals = append(intervals, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked time slots", err)
	}
	return intervals, nil
}
