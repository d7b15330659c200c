package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilhermegg-06/ELDEPARFUM/pkg/logger"
)

func TestRequestLogging_GeneratesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	mw := RequestLogging(l)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)

	mw(okHandler()).ServeHTTP(rec, req)

	id := rec.Header().Get("X-Correlation-ID")
	assert.NotEmpty(t, id)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, id, out["correlation_id"])
	assert.Equal(t, "GET", out["method"])
}

func TestRequestLogging_PropagatesInboundCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	mw := RequestLogging(l)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "req-abc")

	mw(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "req-abc", rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, buf.String(), "req-abc")
}

func TestRequestLogger_StoresEnrichedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var inner http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		l := logger.FromContext(r.Context())
		l.Info("from handler")
		w.WriteHeader(http.StatusOK)
	}

	// RequestLogging sets the correlation ID, RequestLogger enriches with it.
	handler := RequestLogging(base)(RequestLogger(base)(inner))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "req-xyz")

	handler.ServeHTTP(rec, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var fromHandler map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &fromHandler))
	assert.Equal(t, "from handler", fromHandler["msg"])
	assert.Equal(t, "req-xyz", fromHandler["correlation_id"])
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Recovery(l)(panicky).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "panic recovered")

	// Same envelope shape the handlers write for ordinary failures.
	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "INTERNAL_ERROR", out.Error.Code)
	assert.Equal(t, "an internal error occurred", out.Error.Message)
}
