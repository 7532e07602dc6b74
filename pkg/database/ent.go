package database

import (
	"context"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/internal/repo"
)

// NewEntClient opens a database from central config and wraps it in an Ent
// client. Closing the client closes the connection.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(FromCentralConfig(cfg))
}

// NewEntClientFromConfig creates a new Ent client from package Config
func NewEntClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return db.Ent(), nil
}

// Ent returns an Ent client sharing this connection.
func (db *DB) Ent() *repo.Client {
	return repo.NewClient(repo.Driver(db.Driver()))
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
