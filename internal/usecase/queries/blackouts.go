package queries

import (
	"context"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/errs"
)

type BlackoutQueries interface {
	ListForDate(ctx context.Context, date time.Time) ([]BlackoutView, error)
	ListAll(ctx context.Context) ([]BlackoutView, error)
}

type blackoutQueriesImpl struct {
	blackouts BlackoutReadStore
}

func NewBlackoutQueries(blackouts BlackoutReadStore) BlackoutQueries {
	return &blackoutQueriesImpl{blackouts: blackouts}
}

func (q *blackoutQueriesImpl) ListForDate(ctx context.Context, date time.Time) ([]BlackoutView, error) {
	intervals, err := q.blackouts.ListForDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list blocked time slots")
	}
	return ToBlackoutViews(intervals), nil
}

func (q *blackoutQueriesImpl) ListAll(ctx context.Context) ([]BlackoutView, error) {
	intervals, err := q.blackouts.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list blocked time slots")
	}
	return ToBlackoutViews(intervals), nil
}

func ToBlackoutViews(intervals []schedule.BlockedInterval) []BlackoutView {
	views := make([]BlackoutView, len(intervals))
	for i, b := range intervals {
		views[i] = ToBlackoutView(b)
	}
	return views
}

func ToBlackoutView(b schedule.BlockedInterval) BlackoutView {
	return BlackoutView{
		ID:        b.ID,
		BlockDate: b.Date.Format("2006-01-02"),
		StartTime: b.Start.String(),
		EndTime:   b.End.String(),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}
