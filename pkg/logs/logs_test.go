package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debug, warn bytes.Buffer
	h := fanOut(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("child_id", "c1")

	log.Debug("loaded")
	log.Warn("blob reset")

	assert.Contains(t, debug.String(), "loaded")
	assert.Contains(t, debug.String(), "blob reset")
	assert.NotContains(t, warn.String(), "loaded")
	assert.Contains(t, warn.String(), "child_id=c1")
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestFanOutSingleAndEmpty(t *testing.T) {
	h := slog.NewTextHandler(io.Discard, nil)
	assert.Same(t, h, fanOut(h))
	assert.False(t, fanOut().Enabled(context.Background(), slog.LevelError))
}

func TestLokiWriter(t *testing.T) {
	var (
		mu   sync.Mutex
		got  lokiPush
		user string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/loki/api/v1/push", r.URL.Path)
		user, _, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Logging.Output.Loki = config.LokiConfig{Enabled: true, Endpoint: srv.URL + "/", Username: "grafana", Password: "pw"}

	lw := newLokiWriter(cfg)
	lw.now = func() time.Time { return time.Unix(0, 42) }

	n, err := lw.Write([]byte(`{"msg":"report generated"}` + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "grafana", user)
	require.Len(t, got.Streams, 1)
	assert.Equal(t, map[string]string{"service": "psyassist", "env": "test"}, got.Streams[0].Stream)
	assert.Equal(t, [][2]string{{"42", `{"msg":"report generated"}`}}, got.Streams[0].Values)
}

func TestLokiWriterReportsRejectedPush(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Logging.Output.Loki.Endpoint = srv.URL
	_, err := newLokiWriter(cfg).Write([]byte("x"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "400"))
}
