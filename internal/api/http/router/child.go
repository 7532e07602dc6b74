package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/api/http/handler"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
)

func (r *Router) registerChildRoutes(api fiber.Router, h *handler.ChildHandler, requirePerm permFunc) {
	children := api.Group("/children")

	children.Get("/", requirePerm(authorize.ResourceChild, authorize.ActionList), h.List)
	children.Post("/", requirePerm(authorize.ResourceChild, authorize.ActionCreate), h.Create)

	ch := children.Group("/:id")
	ch.Get("/", requirePerm(authorize.ResourceChild, authorize.ActionRead), h.Get)
	ch.Patch("/", requirePerm(authorize.ResourceChild, authorize.ActionUpdate), h.Update)
	ch.Delete("/", requirePerm(authorize.ResourceChild, authorize.ActionDelete), h.Delete)
	ch.Get("/assessments", requirePerm(authorize.ResourceAssessment, authorize.ActionList), h.ListAssessments)
}
