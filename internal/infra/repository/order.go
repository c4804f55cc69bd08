package repository

import (
	"context"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

const insertOrderQuery = `
	INSERT INTO orders (
		order_number,
		package_type, package_price_cents,
		card_occasion, card_message, card_signature,
		recipient_name, delivery_address, delivery_city, delivery_state, delivery_zipcode,
		gate_code, delivery_instructions, delivery_date, delivery_time_slot,
		sender_name, sender_phone, sender_email,
		has_chocolates, chocolates_price_cents, subtotal_cents, total_cents,
		payment_intent_id, payment_status, status
	) VALUES (
		$1,
		$2, $3,
		$4, $5, $6,
		$7, $8, $9, $10, $11,
		$12, $13, $14, $15,
		$16, $17, $18,
		$19, $20, $21, $22,
		$23, $24, $25
	)
	RETURNING id`

const markPaidQuery = `
	UPDATE orders
	SET payment_status = 'paid', updated_at = now()
	WHERE payment_intent_id = $1 AND payment_status = 'pending'`

const markFailedQuery = `
	UPDATE orders
	SET payment_status = 'failed', updated_at = now()
	WHERE payment_intent_id = $1 AND payment_status = 'pending'`

const claimSlotReservationQuery = `
	UPDATE orders
	SET slot_reserved = TRUE, updated_at = now()
	WHERE id = $1 AND NOT slot_reserved`

const updateStatusQuery = `
	UPDATE orders
	SET status = $2, delivered_at = COALESCE($3, delivered_at), updated_at = now()
	WHERE id = $1`

const updatePaymentStatusQuery = `
	UPDATE orders
	SET payment_status = $2, updated_at = now()
	WHERE id = $1`

const markNotifiedQuery = `
	UPDATE orders
	SET notified = TRUE, updated_at = now()
	WHERE id = $1`

// OrderRepository is the write side of the orders table. Every statement is a
// conditional single-row update so retried webhooks converge instead of
// double-applying.
type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

var _ shared.OrderWrites = (*OrderRepository)(nil)

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertOrderQuery,
		o.OrderNumber,
		string(o.PackageType), o.PackagePrice,
		o.CardOccasion, o.CardMessage, o.CardSignature,
		o.RecipientName, o.DeliveryAddress, o.DeliveryCity, o.DeliveryState, o.DeliveryZipcode,
		o.GateCode, o.DeliveryInstructions, o.DeliveryDate, o.DeliveryTimeSlot,
		o.SenderName, o.SenderPhone, o.SenderEmail,
		o.HasChocolates, o.ChocolatesPrice, o.Subtotal, o.Total,
		o.PaymentIntentID, string(o.PaymentStatus), string(o.Status),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}
	return id, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, paymentIntentID string) (int64, error) {
	tag, err := r.db.Exec(ctx, markPaidQuery, paymentIntentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) MarkFailed(ctx context.Context, paymentIntentID string) (int64, error) {
	tag, err := r.db.Exec(ctx, markFailedQuery, paymentIntentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark order failed", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) ClaimSlotReservation(ctx context.Context, orderID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, claimSlotReservationQuery, orderID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim slot reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, deliveredAt *time.Time) error {
	tag, err := r.db.Exec(ctx, updateStatusQuery, id, string(status), deliveredAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	tag, err := r.db.Exec(ctx, updatePaymentStatusQuery, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, markNotifiedQuery, id); err != nil {
		return infra.WrapRepoErr("failed to mark order notified", err)
	}
	return nil
}
