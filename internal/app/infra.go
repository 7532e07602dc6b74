package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	casbin "github.com/casbin/casbin/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
	"github.com/Alijeyrad/psyassist_backend/pkg/crypto"
	"github.com/Alijeyrad/psyassist_backend/pkg/database"
	"github.com/Alijeyrad/psyassist_backend/pkg/email"
	"github.com/Alijeyrad/psyassist_backend/pkg/events"
	"github.com/Alijeyrad/psyassist_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/psyassist_backend/pkg/redis"
	s3pkg "github.com/Alijeyrad/psyassist_backend/pkg/s3"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideDatabase),
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideS3Client),
	fx.Provide(ProvideEvents),
	fx.Provide(ProvideCatalog),
)

func ProvideDatabase(lc fx.Lifecycle, cfg *config.Config) (*database.DB, error) {
	db, err := database.New(database.FromCentralConfig(cfg.Database))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return db.Close()
		},
	})
	return db, nil
}

func ProvideStore(db *database.DB, cfg *config.Config) (*store.Client, error) {
	box, err := crypto.NewBox(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key: %w", err)
	}
	client := store.NewClient(db.Ent(),
		store.WithBox(box),
		store.WithLogger(slog.Default()),
	)
	if cfg.Database.Migrations.AutoMigrate {
		if err := client.Migrate(context.Background()); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		slog.Info("database schema up to date", "dialect", db.Dialect())
	}
	return client, nil
}

// ProvideRedis returns a nil client when Redis is disabled.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil || rdb == nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	acfg := authorize.FromCentralConfig(cfg.Authorization)

	enforcer, cleanup, err := newEnforcer(acfg, cfg.Database)
	if err != nil {
		return nil, err
	}
	auth, err := authorize.NewAuthorization(enforcer)
	if err != nil {
		cleanup(context.Background())
		return nil, err
	}
	if acfg.EnableAudit {
		auth = authorize.NewAuditedAuthorization(auth, slog.Default())
	}
	if err := authorize.SeedDefaultPolicies(context.Background(), auth); err != nil {
		cleanup(context.Background())
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("cleaning up Casbin enforcer")
			cleanup(ctx)
			return nil
		},
	})
	return auth, nil
}

func newEnforcer(acfg authorize.Config, db config.DatabaseConfig) (*casbin.DistributedEnforcer, authorize.CleanupFunc, error) {
	switch acfg.PolicyStore {
	case authorize.PolicyStoreMemory:
		return authorize.NewMemoryEnforcer(acfg.CasbinModelPath)
	case authorize.PolicyStoreDatabase:
		if database.FromCentralConfig(db).DriverName() != database.DriverPostgres {
			return nil, nil, errors.New("authorization: database policy store requires postgres")
		}
		return authorize.NewDatabaseEnforcer(acfg.CasbinModelPath, database.NewDSN(db), acfg.PolicySyncEnabled)
	default:
		return nil, nil, fmt.Errorf("authorization: unknown policy store %q", acfg.PolicyStore)
	}
}

// ProvideEmailClient returns a nil client when e-mail is disabled; report
// sharing then answers ErrShareDisabled.
func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	if !cfg.Email.Enabled {
		return nil, nil
	}
	return email.NewFromCentral(cfg.Email)
}

// ProvideS3Client returns a nil client when archiving is disabled.
func ProvideS3Client(cfg *config.Config) (*s3pkg.Client, error) {
	if !cfg.S3.Enabled {
		return nil, nil
	}
	return s3pkg.New(cfg.S3)
}

func ProvideEvents(lc fx.Lifecycle, cfg *config.Config) (events.Publisher, error) {
	nc, pub, err := events.Connect(cfg.Nats)
	if err != nil {
		return nil, err
	}
	if nc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				slog.Debug("draining NATS connection")
				return drain(nc)
			},
		})
	}
	return pub, nil
}

func drain(nc *nats.Conn) error {
	if nc.IsClosed() {
		return nil
	}
	return nc.Drain()
}

func ProvideCatalog() (*catalog.Catalog, error) {
	return catalog.Default()
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
