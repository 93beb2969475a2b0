package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// DB is an open database handle plus the dialect it speaks.
type DB struct {
	SQL     *sql.DB
	Dialect string

	closers []func()
}

// Close releases the handle and any pool behind it.
func (d *DB) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// Open connects to the database selected by cfg.DatabaseDriver.
// PostgreSQL goes through a pgx pool wrapped as *sql.DB so repositories
// stay driver-agnostic.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*DB, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		sqlDB := stdlib.OpenDBFromPool(pool)
		return &DB{
			SQL:     sqlDB,
			Dialect: config.DriverPostgres,
			closers: []func(){pool.Close, func() { sqlDB.Close() }},
		}, nil

	case config.DriverSQLite:
		sqlDB, err := NewSQLiteDB(ctx, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		return &DB{
			SQL:     sqlDB,
			Dialect: config.DriverSQLite,
			closers: []func(){func() { sqlDB.Close() }},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
