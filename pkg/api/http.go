// Package api exposes the HTTP surface: transcript upload, PWA share-target
// intake, per-identity persistence slots, health and metrics.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eladmint/whatsapp-analyzer/pkg/ai"
	"github.com/eladmint/whatsapp-analyzer/pkg/auth"
	"github.com/eladmint/whatsapp-analyzer/pkg/store"
	"github.com/eladmint/whatsapp-analyzer/pkg/telemetry"
)

// Deps carries the collaborators the handlers need. AI may be nil when the
// text-generation overlay is disabled; Store must be opened before serving.
type Deps struct {
	Store    *store.Store
	AI       *ai.Client
	Verifier *auth.Verifier
	Limiter  *auth.LimiterPool
}

// NewRouter builds the service router. The upload and share-target routes
// share one pipeline; the storage routes sit behind the signed-identity
// middleware.
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()

	route := func(path string, h http.Handler) http.Handler {
		return telemetry.Instrument(path, d.Limiter.Limit(h))
	}

	r.Handle("/v1/analyses", route("/v1/analyses", http.HandlerFunc(d.handleAnalyze))).Methods(http.MethodPost)
	r.Handle("/v1/share", route("/v1/share", http.HandlerFunc(d.handleShare))).Methods(http.MethodPost)

	signed := func(path string, h http.HandlerFunc) http.Handler {
		return telemetry.Instrument(path, d.Limiter.Limit(d.Verifier.RequireSignedIdentity(h)))
	}
	r.Handle("/v1/storage/{slot}", signed("/v1/storage/{slot}", d.handleStorageSave)).Methods(http.MethodPut)
	r.Handle("/v1/storage/{slot}", signed("/v1/storage/{slot}", d.handleStorageGet)).Methods(http.MethodGet)
	r.Handle("/v1/storage", signed("/v1/storage", d.handleStorageClear)).Methods(http.MethodDelete)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
