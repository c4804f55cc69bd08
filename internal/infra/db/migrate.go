package db

import (
	"embed"
	"errors"

	"bloom-express/internal/pkg/config"
	"bloom-express/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies pending schema migrations. Already-up-to-date is not an
// error.
func Migrate(cfg config.DBConfig) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errs.Wrap(err, "failed to load embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.BuildDSN())
	if err != nil {
		return errs.Wrap(err, "failed to initialize migrations")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}
	return nil
}
