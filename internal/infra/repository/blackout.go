package repository

import (
	"context"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/infra"
	"bloom-express/internal/infra/db"
	"bloom-express/internal/usecase/shared"

	"github.com/google/uuid"
)

const insertBlackoutQuery = `
	INSERT INTO blocked_time_slots (block_date, start_time, end_time, reason, created_by)
	VALUES ($1, $2::time, $3::time, $4, $5)
	RETURNING id, created_at`

const deleteBlackoutQuery = `
	DELETE FROM blocked_time_slots
	WHERE id = $1`

// BlackoutRepository is the write side of the blackout registry. Times travel
// as "HH:MM:SS" text and are cast to TIME in the statement.
type BlackoutRepository struct {
	db db.DBTX
}

func NewBlackoutRepository(dbtx db.DBTX) *BlackoutRepository {
	return &BlackoutRepository{db: dbtx}
}

var _ shared.BlackoutWrites = (*BlackoutRepository)(nil)

func (r *BlackoutRepository) Create(ctx context.Context, interval schedule.BlockedInterval) (schedule.BlockedInterval, error) {
	err := r.db.QueryRow(ctx, insertBlackoutQuery,
		interval.Date,
		interval.Start.String(),
		interval.End.String(),
		interval.Reason,
		interval.CreatedBy,
	).Scan(&interval.ID, &interval.CreatedAt)
	if err != nil {
		return schedule.BlockedInterval{}, infra.WrapRepoErr("failed to insert blocked slot", err)
	}
	return interval, nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteBlackoutQuery, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete blocked slot", err)
	}
	return tag.RowsAffected() > 0, nil
}
