package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type SlotView struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Blocked     bool    `json:"blocked"`
	BlockReason *string `json:"block_reason,omitempty"`
}

type AvailableSlotsView struct {
	Today    []SlotView `json:"today"`
	Tomorrow []SlotView `json:"tomorrow"`
}

type BlackoutView struct {
	ID        uuid.UUID `json:"id"`
	BlockDate string    `json:"block_date"` // "2006-01-02"
	StartTime string    `json:"start_time"` // "HH:MM:SS"
	EndTime   string    `json:"end_time"`   // end exclusive
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderView struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`

	PackageType       string `json:"package_type"`
	PackagePriceCents int64  `json:"package_price_cents"`

	CardOccasion  string `json:"card_occasion"`
	CardMessage   string `json:"card_message"`
	CardSignature string `json:"card_signature"`

	RecipientName        string  `json:"recipient_name"`
	DeliveryAddress      string  `json:"delivery_address"`
	DeliveryCity         string  `json:"delivery_city"`
	DeliveryState        string  `json:"delivery_state"`
	DeliveryZipcode      string  `json:"delivery_zipcode"`
	GateCode             *string `json:"gate_code,omitempty"`
	DeliveryInstructions *string `json:"delivery_instructions,omitempty"`
	DeliveryDate         string  `json:"delivery_date"`
	DeliveryTimeSlot     string  `json:"delivery_time_slot"`

	SenderName  string `json:"sender_name"`
	SenderPhone string `json:"sender_phone"`
	SenderEmail string `json:"sender_email"`

	HasChocolates        bool  `json:"has_chocolates"`
	ChocolatesPriceCents int64 `json:"chocolates_price_cents"`
	SubtotalCents        int64 `json:"subtotal_cents"`
	TotalCents           int64 `json:"total_cents"`

	PaymentIntentID string `json:"payment_intent_id"`
	PaymentStatus   string `json:"payment_status"`
	Status          string `json:"status"`
	SlotReserved    bool   `json:"slot_reserved"`
	Notified        bool   `json:"notified"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type OrderListItem struct {
	ID               uuid.UUID `json:"id"`
	OrderNumber      string    `json:"order_number"`
	PackageType      string    `json:"package_type"`
	RecipientName    string    `json:"recipient_name"`
	DeliveryCity     string    `json:"delivery_city"`
	DeliveryDate     string    `json:"delivery_date"`
	DeliveryTimeSlot string    `json:"delivery_time_slot"`
	TotalCents       int64     `json:"total_cents"`
	PaymentStatus    string    `json:"payment_status"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// ScheduleHourView is one hour bucket of the admin capacity ledger. The admin
// UI groups by hour-of-day even though slots are offered at 30-minute
// granularity.
type ScheduleHourView struct {
	Hour   int             `json:"hour"`
	Label  string          `json:"label"`
	Orders []OrderListItem `json:"orders"`
}

type DayScheduleView struct {
	Date     string             `json:"date"`
	Hours    []ScheduleHourView `json:"hours"`
	Blackout []BlackoutView     `json:"blocked_slots"`
}

type StatsView struct {
	TotalOrders       int64 `json:"total_orders"`
	DeliveredOrders   int64 `json:"delivered_orders"`
	PendingOrders     int64 `json:"pending_orders"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	TodayOrders       int64 `json:"today_orders"`
	TodayRevenueCents int64 `json:"today_revenue_cents"`
}

type ZipcodeView struct {
	ID        uuid.UUID `json:"id"`
	Zipcode   string    `json:"zipcode"`
	City      string    `json:"city"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type StoreSettingsView struct {
	PhoneNumber   string `json:"phone_number"`
	IsClosed      bool   `json:"is_closed"`
	ClosedMessage string `json:"closed_message"`
	ClosedUntil   string `json:"closed_until"`
}
