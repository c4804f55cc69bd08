package repository

import (
	"context"

	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/pkg/pgconv"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

const insertZipcodeQuery = `
	INSERT INTO delivery_zipcodes (zipcode, city)
	VALUES ($1, $2)
	RETURNING id`

const deleteZipcodeQuery = `
	DELETE FROM delivery_zipcodes
	WHERE id = $1`

type ZipcodeRepository struct {
	db db.DBTX
}

func NewZipcodeRepository(dbtx db.DBTX) *ZipcodeRepository {
	return &ZipcodeRepository{db: dbtx}
}

var _ shared.ZipcodeWrites = (*ZipcodeRepository)(nil)

func (r *ZipcodeRepository) Create(ctx context.Context, zipcode, city string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertZipcodeQuery, zipcode, city).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("zipcode already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert zipcode", err)
	}
	return id, nil
}

func (r *ZipcodeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteZipcodeQuery, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete zipcode", err)
	}
	return tag.RowsAffected() > 0, nil
}
