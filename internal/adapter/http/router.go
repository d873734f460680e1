package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/rollup/internal/adapter/http/handler"
	"github.com/iho/rollup/internal/adapter/http/middleware"
	"github.com/iho/rollup/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	EventHandler     *handler.EventHandler
	ReconcileHandler *handler.ReconcileHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	Metrics          *metrics.Metrics
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", cfg.EventHandler.Dispatch)

		r.Post("/subaccounts/{id}/reconcile", cfg.ReconcileHandler.ReconcileSubaccount)
		r.Post("/accounts/{id}/reconcile", cfg.ReconcileHandler.ReconcileAccount)
		r.Post("/customers/{code}/reconcile", cfg.ReconcileHandler.ReconcileCustomer)
		r.Post("/families/{code}/reconcile", cfg.ReconcileHandler.ReconcileFamily)

		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	return r
}
