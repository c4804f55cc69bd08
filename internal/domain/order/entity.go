package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"bloom-express/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot      = errors.New("invalid delivery time slot")
	ErrMissingField     = errors.New("missing required order field")
	ErrOrderImmutable   = errors.New("delivered or cancelled orders cannot be edited")
	ErrSlotOutsideHours = errors.New("delivery time slot outside business hours")
)

// Order carries everything the shop needs to assemble, card-write, and
// deliver one arrangement. A pending order does not consume slot capacity;
// only a paid one does.
type Order struct {
	ID          uuid.UUID
	OrderNumber string

	PackageType  PackageType
	PackagePrice int64

	CardOccasion  string
	CardMessage   string
	CardSignature string

	RecipientName        string
	DeliveryAddress      string
	DeliveryCity         string
	DeliveryState        string
	DeliveryZipcode      string
	GateCode             *string
	DeliveryInstructions *string
	DeliveryDate         time.Time // local midnight of the delivery day
	DeliveryTimeSlot     string    // schedule.SlotValueLayout

	SenderName  string
	SenderPhone string
	SenderEmail string

	HasChocolates   bool
	ChocolatesPrice int64
	Subtotal        int64
	Total           int64

	PaymentIntentID string
	PaymentStatus   PaymentStatus
	Status          Status
	SlotReserved    bool
	Notified        bool

	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlotTime parses the order's chosen delivery slot in the given location.
func (o *Order) SlotTime(loc *time.Location) (time.Time, error) {
	return ParseSlot(o.DeliveryTimeSlot, loc)
}

func ParseSlot(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(schedule.SlotValueLayout, value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}
	return t, nil
}

// ValidateSlot checks that the chosen slot parses and starts inside business
// hours on its own date. Lead time is not re-checked here; the generator
// already filtered what was offerable, and a slow checkout should not fail
// on a slot the customer was legitimately shown.
func ValidateSlot(value string, hours schedule.Hours, loc *time.Location) (time.Time, error) {
	t, err := ParseSlot(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	open, close := hours.Boundaries(t)
	if t.Before(open) || t.After(close) {
		return time.Time{}, ErrSlotOutsideHours
	}
	return t, nil
}

const orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewNumber mints a business-visible order code like "FL-7KQ2MX". The
// alphabet drops easily confused characters since staff read these aloud.
func NewNumber() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back anyway
		return fmt.Sprintf("FL-%06d", time.Now().UnixNano()%1000000)
	}
	var sb strings.Builder
	sb.WriteString("FL-")
	for _, b := range buf {
		sb.WriteByte(orderNumberAlphabet[int(b)%len(orderNumberAlphabet)])
	}
	return sb.String()
}
