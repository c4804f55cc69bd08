package queries

import (
	"context"
	"time"

	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/pkg/errs"
)

type StatsReadStore interface {
	OrderStats(ctx context.Context, todayStart time.Time) (*StatsView, error)
}

type StatsQueries interface {
	GetStats(ctx context.Context) (*StatsView, error)
}

type statsQueriesImpl struct {
	stats StatsReadStore
	clock clock.Clock
}

func NewStatsQueries(stats StatsReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{stats: stats, clock: clk}
}

func (q *statsQueriesImpl) GetStats(ctx context.Context) (*StatsView, error) {
	view, err := q.stats.OrderStats(ctx, clock.Today(q.clock))
	if err != nil {
		return nil, errs.Wrap(err, "failed to load order stats")
	}
	return view, nil
}
