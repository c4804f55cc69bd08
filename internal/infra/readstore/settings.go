package readstore

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/queries"
)

const findSettingsQuery = `
	SELECT phone_number, is_closed, closed_message, COALESCE(closed_until::text, '')
	FROM store_settings`

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

var _ queries.SettingsReadStore = (*SettingsReadStore)(nil)

func (s *SettingsReadStore) Find(ctx context.Context) (*queries.StoreSettingsView, error) {
	var v queries.StoreSettingsView
	err := s.db.QueryRow(ctx, findSettingsQuery).
		Scan(&v.PhoneNumber, &v.IsClosed, &v.ClosedMessage, &v.ClosedUntil)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load store settings", err)
	}
	return &v, nil
}
