package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream names used as label values
const (
	UpstreamOpenAI   = "openai"
	UpstreamAirtable = "airtable"
)

// Outcome label values
const (
	OutcomeSuccess   = "success"
	OutcomeError     = "error"
	OutcomeTransport = "transport_error"
)

var (
	// HTTPRequestsTotal counts inbound requests by registered route, method and status.
	// Unregistered paths share the "unmatched" route.
	HTTPRequestsTotal *prometheus.CounterVec

	// UpstreamRequestsTotal counts outbound calls by upstream, operation and outcome.
	UpstreamRequestsTotal *prometheus.CounterVec

	// UpstreamDuration tracks outbound call latency.
	UpstreamDuration *prometheus.HistogramVec

	// RunPolls tracks how many status checks a run needed before it settled.
	RunPolls prometheus.Histogram
)

func init() {
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swipe_server",
			Name:      "http_requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swipe_server",
			Name:      "upstream_requests_total",
			Help:      "Total number of outbound requests to third-party APIs",
		},
		[]string{"upstream", "operation", "outcome"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "swipe_server",
			Name:      "upstream_duration_seconds",
			Help:      "Outbound request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"upstream", "operation"},
	)

	RunPolls = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "swipe_server",
			Name:      "assistant_run_polls",
			Help:      "Number of run status checks per assistant run",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		},
	)

	prometheus.MustRegister(
		HTTPRequestsTotal,
		UpstreamRequestsTotal,
		UpstreamDuration,
		RunPolls,
	)
}

// ObserveUpstream records one outbound call.
func ObserveUpstream(upstream, operation, outcome string, start time.Time) {
	UpstreamRequestsTotal.WithLabelValues(upstream, operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(upstream, operation).Observe(time.Since(start).Seconds())
}

// ObserveHTTPRequest records one inbound request.
func ObserveHTTPRequest(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
