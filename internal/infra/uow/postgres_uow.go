package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bloom-express/internal/infra/readstore"
	"bloom-express/internal/infra/repository"
	"bloom-express/internal/pkg/errs"
	"bloom-express/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	txMaxRetries    = 3
	txRetryBaseWait = 10 * time.Millisecond
)

// PostgresUoW implements shared.UnitOfWork on a pgx pool. Within runs the
// closure in a ReadCommitted transaction and retries serialization and
// deadlock failures with a short backoff.
type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < txMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(txRetryBaseWait << attempt):
			}
			slog.Debug("retrying transaction", "attempt", attempt+1)
		}

		lastErr = u.runInTx(ctx, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func (u *PostgresUoW) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgtx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = pgtx.Rollback(ctx)
	}()

	if err := fn(ctx, newTx(pgtx)); err != nil {
		return err
	}
	if err := pgtx.Commit(ctx); err != nil {
		return errs.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.pool)
}

// isRetryable covers serialization_failure and deadlock_detected.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

type pgTx struct {
	orders    *repository.OrderRepository
	blackouts *repository.BlackoutRepository
	zipcodes  *repository.ZipcodeRepository
	settings  *repository.SettingsRepository
	reads     *readstore.CommandReadStore
}

func newTx(tx pgx.Tx) *pgTx {
	return &pgTx{
		orders:    repository.NewOrderRepository(tx),
		blackouts: repository.NewBlackoutRepository(tx),
		zipcodes:  repository.NewZipcodeRepository(tx),
		settings:  repository.NewSettingsRepository(tx),
		reads:     readstore.NewCommandReadStore(tx),
	}
}

var _ shared.Tx = (*pgTx)(nil)

func (t *pgTx) Orders() shared.OrderWrites       { return t.orders }
func (t *pgTx) Blackouts() shared.BlackoutWrites { return t.blackouts }
func (t *pgTx) Zipcodes() shared.ZipcodeWrites   { return t.zipcodes }
func (t *pgTx) Settings() shared.SettingsWrites  { return t.settings }
func (t *pgTx) Reads() shared.CommandReads       { return t.reads }
