package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/api/http/handler"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(api fiber.Router, h *handler.CatalogHandler, requirePerm permFunc) {
	cat := api.Group("/catalog", requirePerm(authorize.ResourceCatalog, authorize.ActionRead))

	cat.Get("/tools", h.Tools)
	cat.Get("/recommendations", h.Recommendations)
	cat.Get("/abilities", h.Abilities)
	cat.Get("/abilities/:id/sentences", h.Sentences)
	cat.Post("/score-check", h.ScoreCheck)
	cat.Post("/passage-preview", h.PassagePreview)
}
