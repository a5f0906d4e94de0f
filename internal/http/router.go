// Package httpapi assembles the HTTP surface: middleware chain, the
// authenticated API routes, and the unauthenticated health and metrics
// endpoints.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crime-evidence/internal/evidence/handler"
	"crime-evidence/internal/platform/metrics"
	"crime-evidence/internal/platform/middleware"
	"crime-evidence/pkg/platform/httputil"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Validator middleware.JWTValidator
	Evidence  *handler.Handler

	// Health reports readiness of the backing dependencies; nil checks are
	// skipped.
	Health func() error
}

// NewRouter builds the chi router with the full middleware chain. API routes
// require a bearer token; health and metrics do not.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	if d.Metrics != nil {
		r.Use(middleware.Latency(d.Metrics))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if d.Health != nil {
			if err := d.Health(); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/internal/v1", func(api chi.Router) {
		api.Use(middleware.RequireAuth(d.Validator, d.Logger))
		d.Evidence.Register(api)
	})

	return r
}
