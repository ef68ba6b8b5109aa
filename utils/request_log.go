package utils

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"swipe_server/metrics"
)

const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// WithRequestLog emits one structured log line and one metric sample per
// request. Paths outside knownRoutes share the "unmatched" route label.
func WithRequestLog(knownRoutes []string, next http.Handler) http.Handler {
	known := make(map[string]struct{}, len(knownRoutes))
	for _, route := range knownRoutes {
		known[route] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		metrics.ObserveHTTPRequest(r.Method, routeLabel(known, r.URL.Path, status), status)

		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("http_request")
	})
}

// Every route is a static path, so the label set is bounded by the router.
func routeLabel(known map[string]struct{}, path string, status int) string {
	if status == http.StatusNotFound {
		return unmatchedRoute
	}
	if _, ok := known[path]; !ok {
		return unmatchedRoute
	}
	return path
}
