package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestConfigDialect(t *testing.T) {
	assert.Equal(t, dialect.Postgres, DefaultConfig().Dialect())
	assert.Equal(t, dialect.SQLite, MemoryConfig().Dialect())
	assert.Equal(t, dialect.SQLite, Config{Driver: "SQLite"}.Dialect())
}

func TestConfigDSN(t *testing.T) {
	pg := DefaultConfig()
	pg.User, pg.Password, pg.DBName = "psy", "secret", "psyassist"
	assert.Equal(t, "host=localhost port=5432 user=psy password=secret dbname=psyassist sslmode=disable", pg.DSN())

	mem := MemoryConfig().DSN()
	assert.True(t, strings.HasPrefix(mem, "file::memory:?"))
	assert.Contains(t, mem, "foreign_keys")
	assert.NotContains(t, mem, "journal_mode")

	file := Config{Driver: DriverSQLite, Path: "data/psy.db"}.DSN()
	assert.Contains(t, file, "journal_mode")
}

func TestFromCentralConfig(t *testing.T) {
	c := FromCentralConfig(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   "x.db",
		Pool:   config.DatabasePoolConfig{MaxOpenConns: 7},
	})
	assert.Equal(t, DriverSQLite, c.DriverName())
	assert.Equal(t, "x.db", c.Path)
	assert.Equal(t, 7, c.MaxOpenConns)
}

func TestNewSQLite(t *testing.T) {
	db, err := New(MemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Ping(context.Background()))
	assert.Equal(t, dialect.SQLite, db.Driver().Dialect())

	var fk int
	require.NoError(t, db.GetConnection().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestInitializeDatabasesSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(dir, "nested", "psy.db"),
	}}
	require.NoError(t, InitializeDatabases(cfg))
	assert.DirExists(t, filepath.Join(dir, "nested"))
}

func TestEntClientMigrates(t *testing.T) {
	client, err := NewEntClientFromConfig(MemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	require.NoError(t, MigrateEnt(ctx, client))
	require.NoError(t, MigrateEnt(ctx, client), "second run is a no-op")

	n, err := client.Child.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
