package commands

import (
	"context"

	"bloom-express/internal/domain/order"
	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminOrderCommands interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error
}

type adminOrderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminOrderCommands(uow shared.UnitOfWork, clk clock.Clock) AdminOrderCommands {
	return &adminOrderCommandsImpl{uow: uow, clock: clk}
}

// UpdateStatus advances the fulfillment workflow. Delivered and cancelled
// orders are frozen; cancelling never releases the order's capacity block,
// since the courier time was already committed.
func (c *adminOrderCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	if !status.IsValid() {
		return errs.ErrInvalidOrderStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OrderByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if snap.Status.IsTerminal() {
			return errs.Mark(order.ErrOrderImmutable, errs.ErrDomainValidation)
		}

		if status == order.StatusDelivered {
			now := c.clock.Now()
			return tx.Orders().UpdateStatus(ctx, id, status, &now)
		}
		return tx.Orders().UpdateStatus(ctx, id, status, nil)
	})
}

func (c *adminOrderCommandsImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	if !status.IsValid() {
		return errs.ErrInvalidOrderStatus
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().OrderByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return tx.Orders().UpdatePaymentStatus(ctx, id, status)
	})
}
