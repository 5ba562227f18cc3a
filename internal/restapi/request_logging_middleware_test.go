package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worlddeaths.org/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	var fromContext *slog.Logger
	handler := NewRequestLoggingMiddleware(logger, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest("GET", "/api/v1/causes?limit=2", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.RemoteAddr = "192.0.2.10:51000"
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Same(t, logger, fromContext)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/causes", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["bytes"])
	assert.Equal(t, "192.0.2.10", entry["client_ip"])
	assert.Equal(t, "test-agent", entry["user_agent"])
	assert.Equal(t, "http_server", entry["component"])
	assert.Contains(t, entry, "duration_ms")
}

func TestRequestLoggingMiddleware_TrustedProxy(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	handler := NewRequestLoggingMiddleware(logger, true)(okHandler())

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.RemoteAddr = "10.0.0.2:51000"
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "198.51.100.4", entry["client_ip"])
}

func TestRequestLoggingMiddleware_ServerErrorsUseRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	api := createTestApi(t)
	handler := NewRequestLoggingMiddleware(logger, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.serverErrorResponse(w, r, assert.AnError)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
