// Package storetest opens throwaway SQLite-backed stores for tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/pkg/database"
)

// New returns a migrated client over a private in-memory database.
func New(t testing.TB, opts ...store.Option) *store.Client {
	t.Helper()
	db, err := database.New(database.MemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	c := store.NewClient(db.Ent(), opts...)
	require.NoError(t, c.Migrate(context.Background()))
	return c
}

// Clock is a settable clock for services that take a now function.
type Clock struct {
	T time.Time
}

func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }
