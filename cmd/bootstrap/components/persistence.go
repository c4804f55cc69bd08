package components

import (
	"time"

	"bloom-express/internal/infra/db"
	"bloom-express/internal/infra/readstore"
	"bloom-express/internal/infra/uow"
	"bloom-express/internal/usecase/queries"
	"bloom-express/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			NewBlackoutReadStore,
			fx.As(new(queries.BlackoutReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewZipcodeReadStore,
			fx.As(new(queries.ZipcodeReadStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewBlackoutReadStore(dbtx db.DBTX, location *time.Location) *readstore.BlackoutReadStore {
	return readstore.NewBlackoutReadStore(dbtx, location)
}
