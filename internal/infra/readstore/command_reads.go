package readstore

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderSnapshotColumns = `
	id, order_number, delivery_date, delivery_time_slot,
	payment_intent_id, payment_status, status, slot_reserved, notified`

const orderSnapshotByIDQuery = `
	SELECT` + orderSnapshotColumns + `
	FROM orders
	WHERE id = $1`

const orderSnapshotByPaymentIntentQuery = `
	SELECT` + orderSnapshotColumns + `
	FROM orders
	WHERE payment_intent_id = $1`

const zipcodeServedQuery = `
	SELECT EXISTS (SELECT 1 FROM delivery_zipcodes WHERE zipcode = $1 AND active)`

const adminByEmailQuery = `
	SELECT id, email, password_hash
	FROM admin_users
	WHERE lower(email) = lower($1)`

// CommandReadStore serves the snapshot reads command handlers decide on. It
// runs against either the pool or an open transaction; inside the reservation
// transaction the snapshot sees that transaction's own writes.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

func (s *CommandReadStore) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return scanSnapshot(s.db.QueryRow(ctx, orderSnapshotByIDQuery, id))
}

func (s *CommandReadStore) OrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*shared.OrderSnapshot, error) {
	return scanSnapshot(s.db.QueryRow(ctx, orderSnapshotByPaymentIntentQuery, paymentIntentID))
}

func (s *CommandReadStore) ZipcodeServed(ctx context.Context, zipcode string) (bool, error) {
	var served bool
	if err := s.db.QueryRow(ctx, zipcodeServedQuery, zipcode).Scan(&served); err != nil {
		return false, infra.WrapRepoErr("failed to check zipcode", err)
	}
	return served, nil
}

func (s *CommandReadStore) AdminByEmail(ctx context.Context, email string) (*shared.AdminSnapshot, error) {
	var a shared.AdminSnapshot
	err := s.db.QueryRow(ctx, adminByEmailQuery, email).Scan(&a.ID, &a.Email, &a.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin", err)
	}
	return &a, nil
}

func scanSnapshot(row pgx.Row) (*shared.OrderSnapshot, error) {
	var snap shared.OrderSnapshot
	err := row.Scan(
		&snap.ID, &snap.OrderNumber, &snap.DeliveryDate, &snap.DeliveryTimeSlot,
		&snap.PaymentIntentID, &snap.PaymentStatus, &snap.Status, &snap.SlotReserved, &snap.Notified,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order snapshot", err)
	}
	return &snap, nil
}
