package handler

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
)

type AssessmentHandler struct {
	svc assessment.Service
}

func NewAssessmentHandler(svc assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func mapAssessmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrAssessmentNotFound),
		errors.Is(err, assessment.ErrChildNotFound),
		errors.Is(err, assessment.ErrAbilityNotFound),
		errors.Is(err, domain.ErrScoreNotFound),
		errors.Is(err, domain.ErrRecommendationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidScore),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidDomain),
		errors.Is(err, assessment.ErrInvalidStatus):
		return unprocessable(c, err.Error())
	case errors.Is(err, domain.ErrNotSaved),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, assessment.ErrSessionBusy),
		errors.Is(err, assessment.ErrSessionMismatch):
		return conflict(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// decodeData reads the assessment blob of a request body. Unknown or
// mistyped collections are rejected rather than silently dropped.
func decodeData(raw json.RawMessage) (domain.Data, error) {
	d, bad := domain.Decode(raw)
	if len(bad) > 0 {
		return d, errors.New("invalid data fields: " + strings.Join(bad, ", "))
	}
	return d, nil
}

type saveBody struct {
	ChildID    string          `json:"child_id"`
	SessionKey string          `json:"session_key"`
	Status     *domain.Status  `json:"status"`
	Data       json.RawMessage `json:"data"`
}

// POST /assessments
func (h *AssessmentHandler) Save(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}

	var body saveBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	childID, err := uuid.Parse(body.ChildID)
	if err != nil {
		return badRequest(c, "invalid child_id")
	}
	data, err := decodeData(body.Data)
	if err != nil {
		return badRequest(c, err.Error())
	}

	a, err := h.svc.Save(c.Context(), owner, assessment.SaveRequest{
		ChildID:    childID,
		SessionKey: body.SessionKey,
		Data:       data,
		Status:     body.Status,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, a)
}

// GET /assessments/:id
func (h *AssessmentHandler) Get(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	a, err := h.svc.Get(c.Context(), owner, id)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, a)
}

// PUT /assessments/:id
func (h *AssessmentHandler) Overwrite(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body saveBody
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	data, err := decodeData(body.Data)
	if err != nil {
		return badRequest(c, err.Error())
	}

	a, err := h.svc.Save(c.Context(), owner, assessment.SaveRequest{
		ID:     &id,
		Data:   data,
		Status: body.Status,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, a)
}

// POST /assessments/:id/complete
func (h *AssessmentHandler) Complete(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	a, err := h.svc.Complete(c.Context(), owner, id)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, a)
}

// POST /assessments/:id/scores
func (h *AssessmentHandler) AddScore(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Tool          string           `json:"tool"`
		Subtest       string           `json:"subtest"`
		StandardScore *float64         `json:"standard_score"`
		ScaleType     domain.ScaleType `json:"scale_type"`
		Notes         string           `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	// 0 is outside every scale, but a missing score must not read as one
	if body.StandardScore == nil {
		return mapAssessmentError(c, domain.FieldError{Field: "standard_score"})
	}

	sc, err := h.svc.AddScore(c.Context(), owner, id, domain.Score{
		Tool:          body.Tool,
		Subtest:       body.Subtest,
		StandardScore: *body.StandardScore,
		ScaleType:     body.ScaleType,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, fiber.Map{
		"score": sc,
		"band":  domain.Interpret(sc.StandardScore, sc.ScaleType),
	})
}

// PATCH /assessments/:id/scores/:sid/domain
func (h *AssessmentHandler) TagScore(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Domain   domain.Domain `json:"domain"`
		Strength bool          `json:"strength"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sc, err := h.svc.TagScore(c.Context(), owner, id, c.Params("sid"), assessment.TagScoreRequest{
		Domain:   body.Domain,
		Strength: body.Strength,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, sc)
}

// POST /assessments/:id/observations
func (h *AssessmentHandler) AddObservation(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	obs, err := h.svc.AddObservation(c.Context(), owner, id, body.Content)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, obs)
}

// POST /assessments/:id/recommendations
func (h *AssessmentHandler) AddRecommendation(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.svc.AddRecommendation(c.Context(), owner, id, body.Title)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, rec)
}

// POST /assessments/:id/recommendations/:rid/toggle
func (h *AssessmentHandler) ToggleRecommendation(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	rec, err := h.svc.ToggleRecommendation(c.Context(), owner, id, c.Params("rid"))
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, rec)
}

// POST /assessments/:id/xba-tests
func (h *AssessmentHandler) AddXBATest(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		AbilityID     string           `json:"ability_id"`
		SourceScoreID *string          `json:"source_score_id"`
		Tool          string           `json:"tool"`
		Subtest       string           `json:"subtest"`
		StandardScore *float64         `json:"standard_score"`
		ScaleType     domain.ScaleType `json:"scale_type"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	test := domain.XBATest{
		AbilityID:     body.AbilityID,
		SourceScoreID: body.SourceScoreID,
		Tool:          body.Tool,
		Subtest:       body.Subtest,
		ScaleType:     body.ScaleType,
	}
	if body.SourceScoreID == nil {
		if body.StandardScore == nil {
			return mapAssessmentError(c, domain.FieldError{Field: "standard_score"})
		}
		test.StandardScore = *body.StandardScore
	}

	x, err := h.svc.AddXBATest(c.Context(), owner, id, test)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, x)
}

// PUT /assessments/:id/passages/:ability
func (h *AssessmentHandler) SetPassage(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		SentenceIDs []string `json:"selected_sentence_ids"`
		CustomText  string   `json:"custom_text"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.SetPassage(c.Context(), owner, id, c.Params("ability"), assessment.SetPassageRequest{
		SentenceIDs: body.SentenceIDs,
		CustomText:  body.CustomText,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, p)
}

// GET /dashboard
func (h *AssessmentHandler) Dashboard(c fiber.Ctx) error {
	owner, valid := ownerID(c)
	if !valid {
		return unauthorized(c)
	}

	d, err := h.svc.Dashboard(c.Context(), owner)
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, d)
}
