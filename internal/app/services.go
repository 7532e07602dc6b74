package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	"github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/service/child"
	"github.com/Alijeyrad/psyassist_backend/internal/service/report"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/pkg/email"
	"github.com/Alijeyrad/psyassist_backend/pkg/events"
	pasetotoken "github.com/Alijeyrad/psyassist_backend/pkg/paseto"
	s3pkg "github.com/Alijeyrad/psyassist_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLocation,
		ProvideSessionRegistry,
		ProvideChildService,
		ProvideAssessmentService,
		ProvideReportService,
		ProvidePasetoManager,
	),
)

// ProvideLocation resolves the zone that dates and observation stamps are
// printed in.
func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	if cfg.Report.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("report.timezone: %w", err)
	}
	return loc, nil
}

// ProvideSessionRegistry shares session keys through Redis when available so
// that concurrent first saves on different instances collapse too.
func ProvideSessionRegistry(rdb *redis.Client) assessment.SessionRegistry {
	if rdb == nil {
		slog.Info("redis disabled, using in-process session registry")
		return assessment.NewMemoryRegistry(time.Now)
	}
	return assessment.NewRedisRegistry(rdb)
}

func ProvideChildService(db *store.Client, loc *time.Location) child.Service {
	return child.New(db, time.Now, loc)
}

func ProvideAssessmentService(
	db *store.Client,
	cat *catalog.Catalog,
	registry assessment.SessionRegistry,
	pub events.Publisher,
	loc *time.Location,
	cfg *config.Config,
) assessment.Service {
	return assessment.New(db, cat, registry, assessment.Options{
		SessionTTL: time.Duration(cfg.Assessment.SessionTTLMinutes) * time.Minute,
		Location:   loc,
		Events:     pub,
	})
}

func ProvideReportService(
	db *store.Client,
	cat *catalog.Catalog,
	pub events.Publisher,
	mail *email.Client,
	archive *s3pkg.Client,
	loc *time.Location,
	cfg *config.Config,
) (report.Service, error) {
	// typed nils must not reach the interfaces
	deps := report.Deps{Events: pub}
	if mail != nil {
		deps.Mailer = mail
	}
	if archive != nil {
		deps.Archive = archive
	}
	return report.New(db, cat, deps, report.Options{
		FilePrefix:    cfg.Report.FilePrefix,
		Title:         cfg.Report.Title,
		HeaderLines:   cfg.Report.HeaderLines,
		SignatureSalt: cfg.Report.SignatureSalt,
		Location:      loc,
	})
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
