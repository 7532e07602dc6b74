package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/service/child"
)

// dateLayout is the wire format of dates of birth.
const dateLayout = "2006-01-02"

type ChildHandler struct {
	svc         child.Service
	assessments assessment.Service
}

func NewChildHandler(svc child.Service, assessments assessment.Service) *ChildHandler {
	return &ChildHandler{svc: svc, assessments: assessments}
}

func mapChildError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, child.ErrChildNotFound), errors.Is(err, assessment.ErrChildNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, child.ErrNameRequired), errors.Is(err, child.ErrInvalidBirthDate):
		return unprocessable(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /children
func (h *ChildHandler) List(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Query string `query:"q"`
		Limit int    `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if q.Limit < 0 {
		return badRequest(c, "invalid limit")
	}

	out, err := h.svc.List(c.Context(), owner, child.ListChildrenRequest{Query: q.Query, Limit: q.Limit})
	if err != nil {
		return mapChildError(c, err)
	}
	return ok(c, fiber.Map{"children": out, "total": len(out)})
}

// POST /children
func (h *ChildHandler) Create(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name        string `json:"name"`
		DateOfBirth string `json:"date_of_birth"`
		Notes       string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	dob, err := time.Parse(dateLayout, body.DateOfBirth)
	if err != nil {
		return unprocessable(c, child.ErrInvalidBirthDate.Error())
	}

	ch, err := h.svc.Create(c.Context(), owner, child.CreateChildRequest{
		Name:        body.Name,
		DateOfBirth: dob,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapChildError(c, err)
	}
	return created(c, ch)
}

// GET /children/:id
func (h *ChildHandler) Get(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid child id")
	}

	out, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		return mapChildError(c, err)
	}
	return ok(c, out)
}

// PATCH /children/:id
func (h *ChildHandler) Update(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid child id")
	}

	var body struct {
		Name        *string `json:"name"`
		DateOfBirth *string `json:"date_of_birth"`
		Notes       *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := child.UpdateChildRequest{Name: body.Name, Notes: body.Notes}
	if body.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *body.DateOfBirth)
		if err != nil {
			return unprocessable(c, child.ErrInvalidBirthDate.Error())
		}
		req.DateOfBirth = &dob
	}

	ch, err := h.svc.Update(c.Context(), owner, id, req)
	if err != nil {
		return mapChildError(c, err)
	}
	return ok(c, ch)
}

// DELETE /children/:id
func (h *ChildHandler) Delete(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid child id")
	}

	if err := h.svc.Delete(c.Context(), owner, id); err != nil {
		return mapChildError(c, err)
	}
	return noContent(c)
}

// GET /children/:id/assessments
func (h *ChildHandler) ListAssessments(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid child id")
	}

	out, err := h.assessments.List(c.Context(), owner, assessment.ListRequest{ChildID: &id})
	if err != nil {
		return mapChildError(c, err)
	}
	return ok(c, fiber.Map{"assessments": out, "total": len(out)})
}
