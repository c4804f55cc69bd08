package commands

import (
	"context"
	"time"

	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/pkg/patch"
	"bloom-express/internal/usecase/queries"
	"bloom-express/internal/usecase/shared"
)

// UpdateSettingsParams carries a partial settings update; nil fields keep
// their current value. An empty ClosedUntil clears the reopen date.
type UpdateSettingsParams struct {
	PhoneNumber   *string
	IsClosed      *bool
	ClosedMessage *string
	ClosedUntil   *string // "2006-01-02"
}

type SettingsCommands interface {
	Update(ctx context.Context, params UpdateSettingsParams) (*queries.StoreSettingsView, error)
}

type settingsCommandsImpl struct {
	uow      shared.UnitOfWork
	settings queries.SettingsQueries
}

func NewSettingsCommands(uow shared.UnitOfWork, settings queries.SettingsQueries) SettingsCommands {
	return &settingsCommandsImpl{
		uow:      uow,
		settings: settings,
	}
}

func (c *settingsCommandsImpl) Update(ctx context.Context, params UpdateSettingsParams) (*queries.StoreSettingsView, error) {
	current, err := c.settings.GetStoreSettings(ctx)
	if err != nil {
		return nil, err
	}

	merged := shared.StoreSettings{
		PhoneNumber:   patch.Coalesce(params.PhoneNumber, current.PhoneNumber),
		IsClosed:      patch.Coalesce(params.IsClosed, current.IsClosed),
		ClosedMessage: patch.Coalesce(params.ClosedMessage, current.ClosedMessage),
		ClosedUntil:   patch.Coalesce(params.ClosedUntil, current.ClosedUntil),
	}

	if merged.ClosedUntil != "" {
		if _, err := time.Parse("2006-01-02", merged.ClosedUntil); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().Upsert(ctx, merged); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.StoreSettingsView{
		PhoneNumber:   merged.PhoneNumber,
		IsClosed:      merged.IsClosed,
		ClosedMessage: merged.ClosedMessage,
		ClosedUntil:   merged.ClosedUntil,
	}, nil
}
