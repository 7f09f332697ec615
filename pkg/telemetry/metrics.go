// Package telemetry exposes Prometheus metrics for the HTTP surface and the
// analysis pipeline.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatalyzer_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chatalyzer_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// MessagesParsed counts transcript lines successfully parsed into messages.
	MessagesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatalyzer_messages_parsed_total",
		Help: "Messages extracted from uploaded transcripts.",
	})

	// AnalysesTotal counts completed analysis runs.
	AnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatalyzer_analyses_total",
		Help: "Completed chat analysis runs.",
	})

	// AIFailures counts text-generation collaborator failures by reason.
	AIFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatalyzer_ai_failures_total",
		Help: "AI collaborator failures by reason.",
	}, []string{"reason"})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps a handler with request counting and latency observation.
// The path label uses the route template passed by the router, not the raw
// URL, to keep cardinality bounded.
func Instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
