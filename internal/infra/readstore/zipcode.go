package readstore

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/queries"
)

const listActiveZipcodesQuery = `
	SELECT id, zipcode, city, active, created_at
	FROM delivery_zipcodes
	WHERE active
	ORDER BY zipcode`

const findZipcodeQuery = `
	SELECT id, zipcode, city, active, created_at
	FROM delivery_zipcodes
	WHERE zipcode = $1`

type ZipcodeReadStore struct {
	db db.DBTX
}

func NewZipcodeReadStore(dbtx db.DBTX) *ZipcodeReadStore {
	return &ZipcodeReadStore{db: dbtx}
}

var _ queries.ZipcodeReadStore = (*ZipcodeReadStore)(nil)

func (s *ZipcodeReadStore) ListActive(ctx context.Context) ([]queries.ZipcodeView, error) {
	rows, err := s.db.Query(ctx, listActiveZipcodesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list zipcodes", err)
	}
	defer rows.Close()

	var views []queries.ZipcodeView
	for rows.Next() {
		var v queries.ZipcodeView
		if err := rows.Scan(&v.ID, &v.Zipcode, &v.City, &v.Active, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan zipcode", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate zipcodes", err)
	}
	return views, nil
}

func (s *ZipcodeReadStore) FindByZipcode(ctx context.Context, zipcode string) (*queries.ZipcodeView, error) {
	var v queries.ZipcodeView
	err := s.db.QueryRow(ctx, findZipcodeQuery, zipcode).
		Scan(&v.ID, &v.Zipcode, &v.City, &v.Active, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("zipcode not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find zipcode", err)
	}
	return &v, nil
}
