package shared

import (
	"context"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"

	"github.com/google/uuid"
)

// UnitOfWork runs write-side work. Within gives a transaction whose repos all
// share one connection; CommandReads serves one-off reads outside any
// transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderWrites
	Blackouts() BlackoutWrites
	Zipcodes() ZipcodeWrites
	Settings() SettingsWrites
	Reads() CommandReads
}

type OrderWrites interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	// MarkPaid flips pending -> paid for the order owning the payment intent.
	// Returns the number of rows changed; zero means the order was already
	// settled (or unknown), which callers use as the idempotency signal.
	MarkPaid(ctx context.Context, paymentIntentID string) (int64, error)
	MarkFailed(ctx context.Context, paymentIntentID string) (int64, error)
	// ClaimSlotReservation atomically sets slot_reserved on an order that has
	// not claimed it yet. False means another invocation already won.
	ClaimSlotReservation(ctx context.Context, orderID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, deliveredAt *time.Time) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

type BlackoutWrites interface {
	Create(ctx context.Context, interval schedule.BlockedInterval) (schedule.BlockedInterval, error)
	// Delete reports whether a row actually existed. Deleting an absent id is
	// a no-op at this layer; the admin API decides whether that is a 404.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ZipcodeWrites interface {
	Create(ctx context.Context, zipcode, city string) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type SettingsWrites interface {
	// Upsert replaces the storefront's single settings row, creating it when
	// the table is empty.
	Upsert(ctx context.Context, s StoreSettings) error
}

// StoreSettings is the storefront's full operational-settings row. There is
// exactly one; partial updates are merged over the current values before the
// write.
type StoreSettings struct {
	PhoneNumber   string
	IsClosed      bool
	ClosedMessage string
	ClosedUntil   string // "2006-01-02", empty when no reopen date is set
}

type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	OrderByPaymentIntent(ctx context.Context, paymentIntentID string) (*OrderSnapshot, error)
	ZipcodeServed(ctx context.Context, zipcode string) (bool, error)
	AdminByEmail(ctx context.Context, email string) (*AdminSnapshot, error)
}

// OrderSnapshot is the minimal order state command handlers decide on.
type OrderSnapshot struct {
	ID               uuid.UUID
	OrderNumber      string
	DeliveryDate     time.Time
	DeliveryTimeSlot string
	PaymentIntentID  string
	PaymentStatus    order.PaymentStatus
	Status           order.Status
	SlotReserved     bool
	Notified         bool
}

type AdminSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
