package utils

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "req-123", seen)
	require.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	require.Empty(t, RequestIDFromContext(context.Background()))
}

func TestWithRequestLog_LogsStatusWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "swipe_server", "info")
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	h := WithRequestID(WithRequestLog([]string{"/chat"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set("X-Request-Id", "req-log")
	h.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	require.Contains(t, line, `"status":418`)
	require.Contains(t, line, `"request_id":"req-log"`)
	require.Contains(t, line, `"path":"/chat"`)
	require.Contains(t, line, `"service":"swipe_server"`)
}

func TestRouteLabel(t *testing.T) {
	known := map[string]struct{}{"/chat": {}, "/healthz": {}}

	require.Equal(t, "/chat", routeLabel(known, "/chat", http.StatusOK))
	require.Equal(t, "/chat", routeLabel(known, "/chat", http.StatusMethodNotAllowed))
	require.Equal(t, "unmatched", routeLabel(known, "/healthz", http.StatusNotFound))
	require.Equal(t, "unmatched", routeLabel(known, "/wp-admin", http.StatusNoContent))
	require.Equal(t, "unmatched", routeLabel(known, "/chat/extra", http.StatusOK))
}

func TestInitLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "swipe_server", "chatty")
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	initLogger(&buf, "swipe_server", "DEBUG")
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestWithSecurityHeaders(t *testing.T) {
	h := WithSecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Empty(t, rec.Header().Get("Strict-Transport-Security"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
}
