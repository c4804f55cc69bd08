package readstore

import (
	"context"
	"time"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/usecase/queries"
)

// Revenue counts only settled payments; pending covers every workflow state
// the shop still has to act on.
const orderStatsQuery = `
	SELECT
		count(*)                                                               AS total_orders,
		count(*) FILTER (WHERE status = 'delivered')                           AS delivered_orders,
		count(*) FILTER (WHERE status IN ('received', 'approved', 'in_progress', 'out_for_delivery')) AS pending_orders,
		COALESCE(sum(total_cents) FILTER (WHERE payment_status = 'paid'), 0)   AS total_revenue_cents,
		count(*) FILTER (WHERE created_at >= $1)                               AS today_orders,
		COALESCE(sum(total_cents) FILTER (WHERE payment_status = 'paid' AND created_at >= $1), 0) AS today_revenue_cents
	FROM orders`

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

var _ queries.StatsReadStore = (*StatsReadStore)(nil)

func (s *StatsReadStore) OrderStats(ctx context.Context, todayStart time.Time) (*queries.StatsView, error) {
	var v queries.StatsView
	err := s.db.QueryRow(ctx, orderStatsQuery, todayStart).Scan(
		&v.TotalOrders,
		&v.DeliveredOrders,
		&v.PendingOrders,
		&v.TotalRevenueCents,
		&v.TodayOrders,
		&v.TodayRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order stats", err)
	}
	return &v, nil
}
