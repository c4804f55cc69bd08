package queries

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/pkg/errs"
)

// defaultPhoneNumber is shown when the settings row has not been created yet,
// so the storefront header never renders empty.
const defaultPhoneNumber = "(555) 123-4567"

type SettingsReadStore interface {
	Find(ctx context.Context) (*StoreSettingsView, error)
}

type SettingsQueries interface {
	GetStoreSettings(ctx context.Context) (*StoreSettingsView, error)
}

type settingsQueriesImpl struct {
	settings SettingsReadStore
}

func NewSettingsQueries(settings SettingsReadStore) SettingsQueries {
	return &settingsQueriesImpl{settings: settings}
}

// GetStoreSettings falls back to an open store with the default phone number
// when no row exists; a missing row must never close the storefront.
func (q *settingsQueriesImpl) GetStoreSettings(ctx context.Context) (*StoreSettingsView, error) {
	view, err := q.settings.Find(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &StoreSettingsView{PhoneNumber: defaultPhoneNumber}, nil
		}
		return nil, errs.Wrap(err, "failed to load store settings")
	}
	return view, nil
}
