package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
)

// CatalogHandler serves the static reference data and the stateless score
// and passage helpers.
type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// GET /catalog/tools
func (h *CatalogHandler) Tools(c fiber.Ctx) error {
	return ok(c, h.cat.Tools())
}

// GET /catalog/recommendations
func (h *CatalogHandler) Recommendations(c fiber.Ctx) error {
	return ok(c, h.cat.StarterRecommendations())
}

// GET /catalog/abilities
func (h *CatalogHandler) Abilities(c fiber.Ctx) error {
	type ability struct {
		ID          string `json:"id"`
		Code        string `json:"code"`
		Name        string `json:"name"`
		NameHe      string `json:"name_he"`
		Description string `json:"description"`
	}
	abilities := h.cat.Abilities()
	out := make([]ability, 0, len(abilities))
	for _, a := range abilities {
		out = append(out, ability{a.ID, a.Code, a.Name, a.NameHe, a.Description})
	}
	return ok(c, out)
}

// GET /catalog/abilities/:id/sentences
func (h *CatalogHandler) Sentences(c fiber.Ctx) error {
	a, found := h.cat.Ability(c.Params("id"))
	if !found {
		return notFound(c, "CHC ability not found")
	}
	return ok(c, a.Sentences)
}

// POST /catalog/score-check
func (h *CatalogHandler) ScoreCheck(c fiber.Ctx) error {
	var body struct {
		Value     *float64         `json:"value"`
		ScaleType domain.ScaleType `json:"scale_type"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Value == nil {
		return unprocessable(c, domain.FieldError{Field: "value"}.Error())
	}

	band := domain.Interpret(*body.Value, body.ScaleType)
	return ok(c, fiber.Map{
		"valid":    domain.IsValidScore(*body.Value, body.ScaleType),
		"band":     band,
		"band_he":  domain.LocalizedBand(band),
		"scale":    body.ScaleType,
		"is_known": body.ScaleType.Known(),
	})
}

// POST /catalog/passage-preview
func (h *CatalogHandler) PassagePreview(c fiber.Ctx) error {
	var body struct {
		AbilityID   string   `json:"ability_id"`
		SentenceIDs []string `json:"selected_sentence_ids"`
		CustomText  string   `json:"custom_text"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, found := h.cat.Ability(body.AbilityID)
	if !found {
		return notFound(c, "CHC ability not found")
	}
	return ok(c, fiber.Map{
		"ability_id":     a.ID,
		"generated_text": domain.Compose(body.SentenceIDs, a.Bank(), body.CustomText),
	})
}
