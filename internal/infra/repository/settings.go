package repository

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/usecase/shared"
)

// store_settings is a single-row table keyed on a constant, so the write is
// an upsert against that key.
const upsertSettingsQuery = `
	INSERT INTO store_settings (singleton, phone_number, is_closed, closed_message, closed_until, updated_at)
	VALUES (TRUE, $1, $2, $3, NULLIF($4, '')::date, now())
	ON CONFLICT (singleton) DO UPDATE SET
		phone_number   = EXCLUDED.phone_number,
		is_closed      = EXCLUDED.is_closed,
		closed_message = EXCLUDED.closed_message,
		closed_until   = EXCLUDED.closed_until,
		updated_at     = now()`

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(dbtx db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: dbtx}
}

var _ shared.SettingsWrites = (*SettingsRepository)(nil)

func (r *SettingsRepository) Upsert(ctx context.Context, s shared.StoreSettings) error {
	_, err := r.db.Exec(ctx, upsertSettingsQuery, s.PhoneNumber, s.IsClosed, s.ClosedMessage, s.ClosedUntil)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert store settings", err)
	}
	return nil
}
