// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/ischool/courseinfo-backend/internal/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Open returns a fresh SQLite database under t.TempDir with the full schema applied.
func Open(t testing.TB) *database.DB {
	t.Helper()

	cfg := &config.Config{
		DatabaseDriver: config.DriverSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "courseinfo.db"),
	}
	log := zerolog.Nop()

	require.NoError(t, database.MigrateUp(cfg.DatabaseDriver, database.DSN(cfg), log))

	db, err := database.Open(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}
