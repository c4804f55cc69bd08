package commands

import (
	"context"
	"strings"
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/queries"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBlackoutParams struct {
	Date      time.Time
	StartTime string // "HH:MM" or "HH:MM:SS"
	EndTime   string
	Reason    *string
	CreatedBy string
}

type BlackoutCommands interface {
	Create(ctx context.Context, params CreateBlackoutParams) (*queries.BlackoutView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blackoutCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBlackoutCommands(uow shared.UnitOfWork) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow}
}

// Create records an admin-declared blocked window. Overlap with existing
// intervals is allowed; evaluation treats all intervals for a date as a
// union, so no merge happens here.
func (c *blackoutCommandsImpl) Create(ctx context.Context, params CreateBlackoutParams) (*queries.BlackoutView, error) {
	start, err := schedule.ParseTimeOfDay(params.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	end, err := schedule.ParseTimeOfDay(params.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := schedule.NewWindow(start, end); err != nil {
		return nil, errs.ErrInvalidBlackoutWindow
	}

	createdBy := strings.TrimSpace(params.CreatedBy)
	if createdBy == "" {
		createdBy = "admin"
	}

	interval := schedule.BlockedInterval{
		Date:      midnightOf(params.Date),
		Start:     start,
		End:       end,
		Reason:    params.Reason,
		CreatedBy: createdBy,
	}

	var created schedule.BlockedInterval
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Blackouts().Create(ctx, interval)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view := queries.ToBlackoutView(created)
	return &view, nil
}

// Delete is idempotent at the registry layer; the boundary reports 404 when
// nothing was there to delete.
func (c *blackoutCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var existed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		existed, err = tx.Blackouts().Delete(ctx, id)
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !existed {
		return errs.ErrBlackoutNotFound
	}
	return nil
}
