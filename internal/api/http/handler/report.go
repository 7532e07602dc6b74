package handler

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/psyassist_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrReportNotFound),
		errors.Is(err, report.ErrAssessmentNotFound),
		errors.Is(err, report.ErrChildNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrNotCompleted), errors.Is(err, report.ErrNotArchived):
		return conflict(c, err.Error())
	case errors.Is(err, report.ErrRecipientRequired):
		return unprocessable(c, err.Error())
	case errors.Is(err, report.ErrShareDisabled):
		return serviceUnavailable(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// POST /assessments/:id/reports
func (h *ReportHandler) Generate(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Psychologist string `json:"psychologist"`
	}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	r, err := h.svc.Generate(c.Context(), owner, id, report.GenerateRequest{Psychologist: body.Psychologist})
	if err != nil {
		return mapReportError(c, err)
	}
	return created(c, r)
}

// GET /reports
func (h *ReportHandler) List(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		AssessmentID string `query:"assessment_id"`
		Limit        int    `query:"limit"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}
	if q.Limit < 0 {
		return badRequest(c, "invalid limit")
	}

	req := report.ListRequest{Limit: q.Limit}
	if q.AssessmentID != "" {
		id, err := uuid.Parse(q.AssessmentID)
		if err != nil {
			return badRequest(c, "invalid assessment_id")
		}
		req.AssessmentID = &id
	}

	out, err := h.svc.List(c.Context(), owner, req)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, fiber.Map{"reports": out, "total": len(out)})
}

// GET /reports/:id
func (h *ReportHandler) Get(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid report id")
	}

	r, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, r)
}

// GET /reports/:id/download
func (h *ReportHandler) Download(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid report id")
	}

	doc, err := h.svc.Download(c.Context(), owner, id)
	if err != nil {
		return mapReportError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="report.txt"; filename*=UTF-8''%s`, url.PathEscape(doc.Filename)))
	return c.Send(doc.Content)
}

// GET /reports/:id/archive
func (h *ReportHandler) ArchiveURL(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid report id")
	}

	u, err := h.svc.ArchiveURL(c.Context(), owner, id)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, fiber.Map{"url": u})
}

// POST /reports/:id/share
func (h *ReportHandler) Share(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid report id")
	}

	var body struct {
		To   string `json:"to"`
		Note string `json:"note"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Share(c.Context(), owner, id, report.ShareRequest{To: body.To, Note: body.Note}); err != nil {
		return mapReportError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"shared": true}})
}
