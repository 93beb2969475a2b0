package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/ischool/courseinfo-backend/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

//go:embed migrations
var migrationFS embed.FS

// DSN returns the connection string for the configured driver.
func DSN(cfg *config.Config) string {
	if cfg.DatabaseDriver == config.DriverPostgres {
		return cfg.DatabaseURL
	}
	return SQLiteDSN(cfg.SQLitePath)
}

// NewMigrator builds a migrator over the embedded schema for dialect.
// It owns a dedicated connection; Close on the result releases it and
// leaves any serving pool untouched.
func NewMigrator(dialect, dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFS, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}

	var sqlDriver string
	switch dialect {
	case config.DriverPostgres:
		sqlDriver = "pgx"
	case config.DriverSQLite:
		sqlDriver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dialect)
	}

	db, err := sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}

	var m *migrate.Migrate
	switch dialect {
	case config.DriverPostgres:
		drv, derr := migratepgx.WithInstance(db, &migratepgx.Config{})
		if derr != nil {
			db.Close()
			return nil, fmt.Errorf("migration driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "pgx5", drv)
	default:
		drv, derr := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if derr != nil {
			db.Close()
			return nil, fmt.Errorf("migration driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", drv)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date schema is not an error.
func MigrateUp(dialect, dsn string, log zerolog.Logger) error {
	m, err := NewMigrator(dialect, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", err)
	}

	log.Info().
		Str("driver", dialect).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Schema migrated")

	return nil
}
