package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestFromCentralConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Environment = "production"
	cfg.Observability.ServiceName = "psyassist"
	cfg.Observability.Tracing.Enabled = true
	cfg.Observability.Tracing.SamplingRate = 0.25
	cfg.Observability.Metrics.Enabled = true

	got := FromCentralConfig(cfg)
	assert.Equal(t, "production", got.Environment)
	assert.True(t, got.TracingEnabled)
	assert.True(t, got.MetricsEnabled)
	assert.InDelta(t, 0.25, got.SamplingRate, 1e-9)
}

func TestMetricsHandlerDisabled(t *testing.T) {
	var p *Provider
	assert.Nil(t, p.MetricsHandler())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMiddlewareRecordsRequests(t *testing.T) {
	ctx := context.Background()
	p, err := InitTelemetry(ctx, Config{ServiceName: "psyassist-test", MetricsEnabled: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(ctx) })

	app := fiber.New()
	app.Use(FiberMiddleware())
	app.Get("/children/:id", func(c fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/children/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))

	rec := httptest.NewRecorder()
	p.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_server_request_count")
	assert.Contains(t, string(body), `http_route="/children/:id"`)
}
