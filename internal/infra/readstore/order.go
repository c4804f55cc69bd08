package readstore

import (
	"context"
	"time"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderViewColumns = `
	id, order_number,
	package_type, package_price_cents,
	card_occasion, card_message, card_signature,
	recipient_name, delivery_address, delivery_city, delivery_state, delivery_zipcode,
	gate_code, delivery_instructions, delivery_date, delivery_time_slot,
	sender_name, sender_phone, sender_email,
	has_chocolates, chocolates_price_cents, subtotal_cents, total_cents,
	payment_intent_id, payment_status, status, slot_reserved, notified,
	delivered_at, created_at, updated_at`

const findOrderByIDQuery = `
	SELECT` + orderViewColumns + `
	FROM orders
	WHERE id = $1`

const findOrderByNumberQuery = `
	SELECT` + orderViewColumns + `
	FROM orders
	WHERE order_number = $1`

const findOrderByPaymentIntentQuery = `
	SELECT` + orderViewColumns + `
	FROM orders
	WHERE payment_intent_id = $1`

const listRecentOrdersQuery = `
	SELECT id, order_number, package_type, recipient_name, delivery_city,
	       delivery_date, delivery_time_slot, total_cents, payment_status, status, created_at
	FROM orders
	WHERE cardinality($1::text[]) = 0 OR status = ANY($1::text[])
	ORDER BY created_at DESC
	LIMIT $2`

const listOrdersByDeliveryDateQuery = `
	SELECT id, order_number, package_type, recipient_name, delivery_city,
	       delivery_date, delivery_time_slot, total_cents, payment_status, status, created_at
	FROM orders
	WHERE delivery_date = $1::date AND payment_status = 'paid'
	ORDER BY delivery_time_slot`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

var _ queries.OrderReadStore = (*OrderReadStore)(nil)

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	return s.scanOne(s.db.QueryRow(ctx, findOrderByIDQuery, id))
}

func (s *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	return s.scanOne(s.db.QueryRow(ctx, findOrderByNumberQuery, number))
}

func (s *OrderReadStore) FindByPaymentIntent(ctx context.Context, paymentIntentID string) (*queries.OrderView, error) {
	return s.scanOne(s.db.QueryRow(ctx, findOrderByPaymentIntentQuery, paymentIntentID))
}

func (s *OrderReadStore) ListRecent(ctx context.Context, statuses []string, limit int32) ([]queries.OrderListItem, error) {
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := s.db.Query(ctx, listRecentOrdersQuery, statuses, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return scanListItems(rows)
}

func (s *OrderReadStore) ListByDeliveryDate(ctx context.Context, date time.Time) ([]queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersByDeliveryDateQuery, date.Format("2006-01-02"))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by delivery date", err)
	}
	return scanListItems(rows)
}

func (s *OrderReadStore) scanOne(row pgx.Row) (*queries.OrderView, error) {
	var (
		v            queries.OrderView
		deliveryDate time.Time
	)
	err := row.Scan(
		&v.ID, &v.OrderNumber,
		&v.PackageType, &v.PackagePriceCents,
		&v.CardOccasion, &v.CardMessage, &v.CardSignature,
		&v.RecipientName, &v.DeliveryAddress, &v.DeliveryCity, &v.DeliveryState, &v.DeliveryZipcode,
		&v.GateCode, &v.DeliveryInstructions, &deliveryDate, &v.DeliveryTimeSlot,
		&v.SenderName, &v.SenderPhone, &v.SenderEmail,
		&v.HasChocolates, &v.ChocolatesPriceCents, &v.SubtotalCents, &v.TotalCents,
		&v.PaymentIntentID, &v.PaymentStatus, &v.Status, &v.SlotReserved, &v.Notified,
		&v.DeliveredAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}
	v.DeliveryDate = deliveryDate.Format("2006-01-02")
	return &v, nil
}

func scanListItems(rows pgx.Rows) ([]queries.OrderListItem, error) {
	defer rows.Close()

	var items []queries.OrderListItem
	for rows.Next() {
		var (
			item         queries.OrderListItem
			deliveryDate time.Time
		)
		err := rows.Scan(
			&item.ID, &item.OrderNumber, &item.PackageType, &item.RecipientName, &item.DeliveryCity,
			&deliveryDate, &item.DeliveryTimeSlot, &item.TotalCents, &item.PaymentStatus, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		item.DeliveryDate = deliveryDate.Format("2006-01-02")
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, nil
}
