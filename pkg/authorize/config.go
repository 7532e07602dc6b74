package authorize

import "github.com/Alijeyrad/psyassist_backend/config"

const (
	PolicyStoreMemory   = "memory"
	PolicyStoreDatabase = "database"
)

type Config struct {
	// CasbinModelPath overrides DefaultModel when set.
	CasbinModelPath string
	PolicyStore     string
	EnableAudit     bool
	// PolicySyncEnabled starts the postgres watcher for the database store.
	PolicySyncEnabled  bool
	HealthCheckEnabled bool
}

func DefaultConfig() Config {
	return Config{
		PolicyStore:        PolicyStoreMemory,
		EnableAudit:        true,
		HealthCheckEnabled: true,
	}
}

func FromCentralConfig(c config.AuthorizationConfig) Config {
	store := c.PolicyStore
	if store == "" {
		store = PolicyStoreMemory
	}
	return Config{
		CasbinModelPath:    c.CasbinModelPath,
		PolicyStore:        store,
		EnableAudit:        c.EnableAudit,
		PolicySyncEnabled:  c.PolicySyncEnabled,
		HealthCheckEnabled: c.HealthCheckEnabled,
	}
}
