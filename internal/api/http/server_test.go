package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/internal/api/http/router"
	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	"github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/service/child"
	"github.com/Alijeyrad/psyassist_backend/internal/service/report"
	"github.com/Alijeyrad/psyassist_backend/internal/store/storetest"
	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
	pasetotoken "github.com/Alijeyrad/psyassist_backend/pkg/paseto"
)

type testServer struct {
	app    *fiber.App
	tokens *pasetotoken.Manager
	owner  uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Environment = "test"

	db := storetest.New(t)
	cat, err := catalog.Default()
	require.NoError(t, err)

	enforcer, _, err := authorize.NewMemoryEnforcer("")
	require.NoError(t, err)
	auth, err := authorize.NewAuthorization(enforcer)
	require.NoError(t, err)
	require.NoError(t, authorize.SeedDefaultPolicies(t.Context(), auth))

	tokens, err := pasetotoken.New(pasetotoken.Config{
		Mode:      pasetotoken.ModeLocal,
		Issuer:    "auth.psyassist",
		Audience:  "psyassist-api",
		AccessTTL: time.Hour,
	}, pasetotoken.NewLocalKeys())
	require.NoError(t, err)

	assessments := assessment.New(db, cat, nil, assessment.Options{})
	reports, err := report.New(db, cat, report.Deps{}, report.Options{FilePrefix: "report"})
	require.NoError(t, err)

	r := router.NewRouter(router.Params{
		Cfg:           cfg,
		Auth:          auth,
		Catalog:       cat,
		ChildSvc:      child.New(db, time.Now, time.UTC),
		AssessmentSvc: assessments,
		ReportSvc:     reports,
		PasetoMgr:     tokens,
	})
	app := NewApp(cfg, nil, false)
	r.Register(app)

	return &testServer{app: app, tokens: tokens, owner: uuid.New()}
}

func (s *testServer) token(t *testing.T, role string) string {
	t.Helper()
	tok, err := s.tokens.IssueAccess(s.owner, nil, role)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte, nethttp.Header) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out, resp.Header
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/livez", "/readyz", "/startupz"} {
		code, _, _ := s.do(t, nethttp.MethodGet, path, "", nil)
		assert.Equal(t, nethttp.StatusOK, code, path)
	}
}

func TestRequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	code, body, _ := s.do(t, nethttp.MethodGet, "/api/v1/children", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, code)
	assert.True(t, gjson.GetBytes(body, "error").Exists())

	code, _, _ = s.do(t, nethttp.MethodGet, "/api/v1/children", "not-a-token", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	_, _, h := s.do(t, nethttp.MethodGet, "/livez", "", nil)
	assert.NotEmpty(t, h.Get("X-Request-Id"))
}

func TestSupervisorIsReadOnly(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "supervisor")

	code, _, _ := s.do(t, nethttp.MethodGet, "/api/v1/children", tok, nil)
	assert.Equal(t, nethttp.StatusOK, code)

	code, _, _ = s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "Sara Cohen", "date_of_birth": "2015-03-15",
	})
	assert.Equal(t, nethttp.StatusForbidden, code)

	code, _, _ = s.do(t, nethttp.MethodGet, "/api/v1/dashboard", s.token(t, "intern"), nil)
	assert.Equal(t, nethttp.StatusForbidden, code)
}

func TestChildValidation(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	code, _, _ := s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "  ", "date_of_birth": "2015-03-15",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)

	code, _, _ = s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "Sara Cohen", "date_of_birth": "15/03/2015",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)

	code, _, _ = s.do(t, nethttp.MethodGet, "/api/v1/children/"+uuid.NewString(), tok, nil)
	assert.Equal(t, nethttp.StatusNotFound, code)

	code, _, _ = s.do(t, nethttp.MethodGet, "/api/v1/children/nope", tok, nil)
	assert.Equal(t, nethttp.StatusBadRequest, code)
}

func TestScoreCheck(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "supervisor")

	code, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/catalog/score-check", tok, map[string]any{
		"value": 78, "scale_type": "S100",
	})
	require.Equal(t, nethttp.StatusOK, code)
	assert.True(t, gjson.GetBytes(body, "data.valid").Bool())
	assert.Equal(t, "very low", gjson.GetBytes(body, "data.band").String())

	code, body, _ = s.do(t, nethttp.MethodPost, "/api/v1/catalog/score-check", tok, map[string]any{
		"value": 5, "scale_type": "Z",
	})
	require.Equal(t, nethttp.StatusOK, code)
	assert.False(t, gjson.GetBytes(body, "data.valid").Bool())
}

func TestCatalogAbilities(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	code, body, _ := s.do(t, nethttp.MethodGet, "/api/v1/catalog/abilities", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	abilities := gjson.GetBytes(body, "data").Array()
	require.NotEmpty(t, abilities)

	id := abilities[0].Get("id").String()
	code, body, _ = s.do(t, nethttp.MethodGet, "/api/v1/catalog/abilities/"+id+"/sentences", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	sentences := gjson.GetBytes(body, "data").Array()
	require.NotEmpty(t, sentences)

	code, body, _ = s.do(t, nethttp.MethodPost, "/api/v1/catalog/passage-preview", tok, map[string]any{
		"ability_id":            id,
		"selected_sentence_ids": []string{sentences[0].Get("id").String()},
		"custom_text":           "Extra.",
	})
	require.Equal(t, nethttp.StatusOK, code)
	assert.True(t, strings.HasSuffix(gjson.GetBytes(body, "data.generated_text").String(), ". Extra."))

	code, _, _ = s.do(t, nethttp.MethodGet, "/api/v1/catalog/abilities/nope/sentences", tok, nil)
	assert.Equal(t, nethttp.StatusNotFound, code)
}

func TestSaraCohenOverHTTP(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	code, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "Sara Cohen", "date_of_birth": "2015-03-15",
	})
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	childID := gjson.GetBytes(body, "data.id").String()

	code, body, _ = s.do(t, nethttp.MethodPost, "/api/v1/assessments", tok, map[string]any{
		"child_id": childID, "session_key": "tab-1",
	})
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	id := gjson.GetBytes(body, "data.id").String()
	assert.Equal(t, "in-progress", gjson.GetBytes(body, "data.status").String())

	base := "/api/v1/assessments/" + id

	code, body, _ = s.do(t, nethttp.MethodPost, base+"/scores", tok, map[string]any{
		"tool": "WISC-V", "subtest": "Working Memory", "standard_score": 78, "scale_type": "S100",
	})
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	assert.Equal(t, "very low", gjson.GetBytes(body, "data.band").String())

	code, _, _ = s.do(t, nethttp.MethodPost, base+"/scores", tok, map[string]any{
		"tool": "WISC-V", "standard_score": 200, "scale_type": "S100",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)

	code, _, _ = s.do(t, nethttp.MethodPost, base+"/observations", tok, map[string]string{
		"content": "Child cooperated well",
	})
	require.Equal(t, nethttp.StatusCreated, code)

	code, body, _ = s.do(t, nethttp.MethodGet, base, tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	var recID string
	for _, r := range gjson.GetBytes(body, "data.data.recommendations").Array() {
		if r.Get("title").String() == "מתן זמן נוסף במבחנים" {
			recID = r.Get("id").String()
		}
	}
	require.NotEmpty(t, recID)

	code, body, _ = s.do(t, nethttp.MethodPost, base+"/recommendations/"+recID+"/toggle", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.True(t, gjson.GetBytes(body, "data.selected").Bool())

	// reports require a completed assessment
	code, _, _ = s.do(t, nethttp.MethodPost, base+"/reports", tok, nil)
	assert.Equal(t, nethttp.StatusConflict, code)

	code, body, _ = s.do(t, nethttp.MethodPost, base+"/complete", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.Equal(t, "completed", gjson.GetBytes(body, "data.status").String())

	code, body, _ = s.do(t, nethttp.MethodPost, base+"/reports", tok, map[string]string{"psychologist": "Dr. Levi"})
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	reportID := gjson.GetBytes(body, "data.id").String()

	code, body, h := s.do(t, nethttp.MethodGet, "/api/v1/reports/"+reportID+"/download", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.Contains(t, h.Get("Content-Disposition"), "attachment")
	assert.Contains(t, h.Get("Content-Disposition"), "report_Sara_Cohen.txt")
	assert.Contains(t, string(body), "WISC-V - Working Memory: 78 (S100)")
	assert.Contains(t, string(body), "Child cooperated well")

	code, body, _ = s.do(t, nethttp.MethodGet, "/api/v1/reports", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.total").Int())

	// sharing without a mail transport is unavailable, not an error
	code, _, _ = s.do(t, nethttp.MethodPost, "/api/v1/reports/"+reportID+"/share", tok, map[string]string{
		"to": "school@example.com",
	})
	assert.Equal(t, nethttp.StatusServiceUnavailable, code)

	code, body, _ = s.do(t, nethttp.MethodGet, "/api/v1/dashboard", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.children").Int())
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.completed").Int())
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.reports").Int())

	// other psychologists see nothing
	other := newTokenFor(t, s, uuid.New())
	code, _, _ = s.do(t, nethttp.MethodGet, base, other, nil)
	assert.Equal(t, nethttp.StatusNotFound, code)
}

func newTokenFor(t *testing.T, s *testServer, uid uuid.UUID) string {
	t.Helper()
	tok, err := s.tokens.IssueAccess(uid, nil, "psychologist")
	require.NoError(t, err)
	return tok
}

func TestRepeatedSessionSaveReusesRecord(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	_, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "Noa", "date_of_birth": "2016-07-01",
	})
	childID := gjson.GetBytes(body, "data.id").String()

	save := map[string]any{
		"child_id":    childID,
		"session_key": "tab-1",
		"data":        map[string]any{"referral_reason": "attention"},
	}
	code, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/assessments", tok, save)
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	first := gjson.GetBytes(body, "data.id").String()

	code, body, _ = s.do(t, nethttp.MethodPost, "/api/v1/assessments", tok, save)
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	assert.Equal(t, first, gjson.GetBytes(body, "data.id").String())

	code, body, _ = s.do(t, nethttp.MethodGet, "/api/v1/children/"+childID+"/assessments", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.total").Int())

	code, _, _ = s.do(t, nethttp.MethodPost, "/api/v1/assessments", tok, map[string]any{
		"child_id": childID,
		"data":     map[string]any{"scores": "not a list"},
	})
	assert.Equal(t, nethttp.StatusBadRequest, code)
}

func TestMissingStandardScoreIsRejected(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	_, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
		"name": "Sara Cohen", "date_of_birth": "2015-03-15",
	})
	childID := gjson.GetBytes(body, "data.id").String()
	code, body, _ := s.do(t, nethttp.MethodPost, "/api/v1/assessments", tok, map[string]any{"child_id": childID})
	require.Equal(t, nethttp.StatusCreated, code, string(body))
	base := "/api/v1/assessments/" + gjson.GetBytes(body, "data.id").String()

	code, body, _ = s.do(t, nethttp.MethodPost, base+"/scores", tok, map[string]any{
		"tool": "WISC-V", "scale_type": "Z",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)
	assert.Contains(t, gjson.GetBytes(body, "error").String(), "standard_score")

	// zero is a real Z score
	code, body, _ = s.do(t, nethttp.MethodPost, base+"/scores", tok, map[string]any{
		"tool": "WISC-V", "standard_score": 0, "scale_type": "Z",
	})
	assert.Equal(t, nethttp.StatusCreated, code, string(body))

	code, _, _ = s.do(t, nethttp.MethodPost, base+"/xba-tests", tok, map[string]any{
		"ability_id": "gwm", "tool": "KABC", "scale_type": "S100",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)

	code, _, _ = s.do(t, nethttp.MethodPost, "/api/v1/catalog/score-check", tok, map[string]any{
		"scale_type": "Z",
	})
	assert.Equal(t, nethttp.StatusUnprocessableEntity, code)

	code, body, _ = s.do(t, nethttp.MethodGet, base, tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.Len(t, gjson.GetBytes(body, "data.data.scores").Array(), 1)
	assert.Empty(t, gjson.GetBytes(body, "data.data.xba_tests").Array())
}

func TestListQueryValidation(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "psychologist")

	for _, path := range []string{
		"/api/v1/children?limit=abc",
		"/api/v1/children?limit=-1",
		"/api/v1/reports?limit=abc",
		"/api/v1/reports?limit=-1",
		"/api/v1/reports?assessment_id=nope",
	} {
		code, body, _ := s.do(t, nethttp.MethodGet, path, tok, nil)
		assert.Equal(t, nethttp.StatusBadRequest, code, path)
		assert.True(t, gjson.GetBytes(body, "error").Exists(), path)
	}

	for _, name := range []string{"Sara Cohen", "Dan Levi"} {
		code, _, _ := s.do(t, nethttp.MethodPost, "/api/v1/children", tok, map[string]string{
			"name": name, "date_of_birth": "2015-03-15",
		})
		require.Equal(t, nethttp.StatusCreated, code)
	}
	code, body, _ := s.do(t, nethttp.MethodGet, "/api/v1/children?limit=1", tok, nil)
	require.Equal(t, nethttp.StatusOK, code)
	assert.EqualValues(t, 1, gjson.GetBytes(body, "data.total").Int())
}
