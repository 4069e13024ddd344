package server

import (
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"utility-api/internal/calculator"
	"utility-api/internal/config"
	"utility-api/internal/handlers"
	"utility-api/internal/observability"
	"utility-api/internal/text"
)

// NewRouter wires the system endpoints and the rate-limited /api tree.
// ready backs the /ready endpoint.
func NewRouter(cfg *config.Config, ready *atomic.Bool) http.Handler {
	r := chi.NewRouter()
	useMiddleware(r)

	r.Get("/", handlers.Root(handlers.NewDiscovery(cfg.Name, cfg.Version)))
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready(ready))

	r.Handle("/metrics", observability.PrometheusHandler())

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware(limiter))

		calculator.RegisterRoutes(r)
		text.RegisterRoutes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	return r
}

// useMiddleware installs the shared stack. Recovery is innermost so that a
// recovered 500 is still counted and logged by the outer layers.
func useMiddleware(r chi.Router) {
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.MetricsMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(observability.RecoverMiddleware)
}
