package commands

import (
	"context"
	"strings"
	"time"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/shared"
)

type CreateOrderParams struct {
	PackageType   order.PackageType
	HasChocolates bool

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
	DeliveryTimeSlot     string // schedule.SlotValueLayout

	SenderName  string
	SenderPhone string
	SenderEmail string
}

type CreateOrderResult struct {
	OrderNumber  string
	ClientSecret string
}

type CheckoutCommands interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	hours    schedule.Hours
	location *time.Location
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	hours schedule.Hours,
	location *time.Location,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		hours:    hours,
		location: location,
	}
}

// CreateOrder builds a pending order and its payment intent. A pending order
// does not consume slot capacity: until payment succeeds, other customers
// still see and may select the same slot. The business accepts that race;
// the rare double-paid slot is resolved manually.
func (c *checkoutCommandsImpl) CreateOrder(ctx context.Context, params CreateOrderParams) (*CreateOrderResult, error) {
	if err := validateRequiredFields(params); err != nil {
		return nil, err
	}

	pricing, err := order.CalculateTotal(params.PackageType, params.HasChocolates)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownPackage)
	}

	slotTime, err := order.ValidateSlot(params.DeliveryTimeSlot, c.hours, c.location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	served, err := c.uow.CommandReads().ZipcodeServed(ctx, params.DeliveryZipcode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !served {
		return nil, errs.ErrZipcodeNotServed
	}

	orderNumber := order.NewNumber()

	intent, err := c.gateway.CreateIntent(ctx, pricing.TotalCents, map[string]string{
		"order_number":   orderNumber,
		"package_type":   string(params.PackageType),
		"recipient_name": params.RecipientName,
		"sender_email":   params.SenderEmail,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamPayment)
	}

	state := params.DeliveryState
	if state == "" {
		state = "AZ"
	}

	entity := &order.Order{
		OrderNumber:          orderNumber,
		PackageType:          params.PackageType,
		PackagePrice:         pricing.PackagePriceCents,
		CardOccasion:         params.CardOccasion,
		CardMessage:          params.CardMessage,
		CardSignature:        params.CardSignature,
		RecipientName:        params.RecipientName,
		DeliveryAddress:      params.DeliveryAddress,
		DeliveryCity:         params.DeliveryCity,
		DeliveryState:        state,
		DeliveryZipcode:      params.DeliveryZipcode,
		GateCode:             params.GateCode,
		DeliveryInstructions: params.DeliveryInstructions,
		DeliveryDate:         midnightOf(slotTime),
		DeliveryTimeSlot:     params.DeliveryTimeSlot,
		SenderName:           params.SenderName,
		SenderPhone:          params.SenderPhone,
		SenderEmail:          params.SenderEmail,
		HasChocolates:        params.HasChocolates,
		ChocolatesPrice:      pricing.ChocolatesPriceCents,
		Subtotal:             pricing.SubtotalCents,
		Total:                pricing.TotalCents,
		PaymentIntentID:      intent.ID,
		PaymentStatus:        order.PaymentPending,
		Status:               order.StatusReceived,
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Orders().Create(ctx, entity)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateOrderResult{
		OrderNumber:  orderNumber,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func validateRequiredFields(params CreateOrderParams) error {
	required := []string{
		params.RecipientName,
		params.DeliveryAddress,
		params.DeliveryCity,
		params.DeliveryZipcode,
		params.DeliveryTimeSlot,
		params.SenderName,
		params.SenderPhone,
		params.SenderEmail,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return errs.Mark(order.ErrMissingField, errs.ErrDomainValidation)
		}
	}
	return nil
}
