package queries

import (
	"context"
	"strings"
	"time"

	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByNumber(ctx context.Context, number string) (*OrderView, error)
	FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*OrderView, error)
	ListRecent(ctx context.Context, statuses []string, limit int32) ([]OrderListItem, error)
	ListByDeliveryDate(ctx context.Context, date time.Time) ([]OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	GetByNumber(ctx context.Context, number string) (*OrderView, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*OrderView, error)
	List(ctx context.Context, statusFilter string, limit int32) ([]OrderListItem, error)
	ListByDeliveryDate(ctx context.Context, date time.Time) ([]OrderListItem, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
}

func NewOrderQueries(orders OrderReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number string) (*OrderView, error) {
	view, err := q.orders.FindByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order by number")
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*OrderView, error) {
	view, err := q.orders.FindByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order by payment intent")
	}
	return view, nil
}

// List returns the most recent orders. The "pending" filter mirrors the admin
// dashboard meaning: every non-terminal workflow state.
func (q *orderQueriesImpl) List(ctx context.Context, statusFilter string, limit int32) ([]OrderListItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var statuses []string
	switch statusFilter {
	case "", "all":
	case "pending":
		statuses = []string{"received", "approved", "in_progress", "out_for_delivery"}
	default:
		statuses = []string{statusFilter}
	}

	items, err := q.orders.ListRecent(ctx, statuses, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return items, nil
}

func (q *orderQueriesImpl) ListByDeliveryDate(ctx context.Context, date time.Time) ([]OrderListItem, error) {
	items, err := q.orders.ListByDeliveryDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders by delivery date")
	}
	return items, nil
}
