package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/internal/api/http/handler"
	"github.com/Alijeyrad/psyassist_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	"github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/service/child"
	"github.com/Alijeyrad/psyassist_backend/internal/service/report"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
	"github.com/Alijeyrad/psyassist_backend/pkg/observability"
	pasetotoken "github.com/Alijeyrad/psyassist_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client `optional:"true"`
	Auth          authorize.IAuthorization
	Catalog       *catalog.Catalog
	ChildSvc      child.Service
	AssessmentSvc assessment.Service
	ReportSvc     report.Service
	PasetoMgr     *pasetotoken.Manager
	OTel          *observability.Provider `optional:"true"`
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

type permFunc func(authorize.Resource, authorize.Action) fiber.Handler

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Middlewares
	var sessions *redis.Client
	if r.p.Cfg.Authentication.CheckSessions {
		sessions = r.p.Redis
	}
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, sessions)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Handlers
	childH := handler.NewChildHandler(r.p.ChildSvc, r.p.AssessmentSvc)
	assessmentH := handler.NewAssessmentHandler(r.p.AssessmentSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)
	catalogH := handler.NewCatalogHandler(r.p.Catalog)

	api := app.Group("/api/v1", authRequired)

	// 4. Delegate to sub-files
	r.registerChildRoutes(api, childH, requirePerm)
	r.registerAssessmentRoutes(api, assessmentH, reportH, requirePerm)
	r.registerReportRoutes(api, reportH, requirePerm)
	r.registerCatalogRoutes(api, catalogH, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			if !r.p.Cfg.Authorization.HealthCheckEnabled {
				return true
			}
			return authorize.IsPolicyHealthy()
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.OTel == nil {
		return
	}
	if h := r.p.OTel.MetricsHandler(); h != nil {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(h))
	}
}
