// Package http exposes the clustering service over a chi router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/patent-dendrogram/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/handlers"
	"github.com/turtacn/patent-dendrogram/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies of the
// route tree.  Nil handlers leave their routes unregistered.
type RouterConfig struct {
	HealthHandler  *handlers.HealthHandler
	ClusterHandler *handlers.ClusterHandler

	Logger           logging.Logger
	LoggingConfig    middleware.LoggingConfig
	MetricsCollector prometheus.MetricsCollector
}

// NewRouter constructs the complete HTTP route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.MetricsCollector != nil {
		r.Use(middleware.RequestMetrics(prometheus.NewHTTPMetrics(cfg.MetricsCollector)))
	}
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.LoggingConfig))
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	if cfg.ClusterHandler != nil {
		r.Route("/api/v1", func(api chi.Router) {
			registerClusterRoutes(api, cfg.ClusterHandler)
		})
	}

	return r
}

// registerClusterRoutes mounts the clustering endpoints.
func registerClusterRoutes(r chi.Router, h *handlers.ClusterHandler) {
	r.Post("/cluster", h.Cluster)
	r.Post("/matrix", h.Matrix)
	r.Get("/catalog", h.Catalog)
}

//Personal.AI order the ending
