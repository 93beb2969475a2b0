package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/ischool/courseinfo-backend/internal/database"
	"github.com/ischool/courseinfo-backend/internal/database/dbtest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUpCreatesSchema(t *testing.T) {
	db := dbtest.Open(t)

	tables := []string{"periods", "years", "semesters", "courses", "instructors", "students", "sections", "registrations"}
	for _, name := range tables {
		var got string
		err := db.SQL.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, name).Scan(&got)
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")}
	dsn := database.DSN(cfg)

	require.NoError(t, database.MigrateUp(cfg.DatabaseDriver, dsn, zerolog.Nop()))
	require.NoError(t, database.MigrateUp(cfg.DatabaseDriver, dsn, zerolog.Nop()))

	m, err := database.NewMigrator(cfg.DatabaseDriver, dsn)
	require.NoError(t, err)
	defer m.Close()

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := dbtest.Open(t)

	_, err := db.SQL.Exec(`INSERT INTO semesters (year_id, period_id) VALUES ($1, $2)`, 99, 99)
	assert.Error(t, err)
}

func TestUnknownDriver(t *testing.T) {
	_, err := database.Open(context.Background(), &config.Config{DatabaseDriver: "oracle"}, zerolog.Nop())
	assert.Error(t, err)

	_, err = database.NewMigrator("oracle", "")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	pg := &config.Config{DatabaseDriver: config.DriverPostgres, DatabaseURL: "postgres://u@h/db"}
	assert.Equal(t, "postgres://u@h/db", database.DSN(pg))

	lite := &config.Config{DatabaseDriver: config.DriverSQLite, SQLitePath: "/tmp/a.db"}
	dsn := database.DSN(lite)
	assert.Contains(t, dsn, "file:/tmp/a.db?")
	assert.Contains(t, dsn, "foreign_keys%281%29")
}
