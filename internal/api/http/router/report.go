package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/api/http/handler"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
)

func (r *Router) registerReportRoutes(api fiber.Router, h *handler.ReportHandler, requirePerm permFunc) {
	reports := api.Group("/reports")

	reports.Get("/", requirePerm(authorize.ResourceReport, authorize.ActionList), h.List)

	rp := reports.Group("/:id")
	rp.Get("/", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.Get)
	rp.Get("/download", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.Download)
	rp.Get("/archive", requirePerm(authorize.ResourceReport, authorize.ActionRead), h.ArchiveURL)
	rp.Post("/share", requirePerm(authorize.ResourceReport, authorize.ActionShare), h.Share)
}
