package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"loan-emi-service/internal/emi"
	"loan-emi-service/internal/handlers"
	"loan-emi-service/internal/history"
	"loan-emi-service/internal/observability"
)

// NewRouter wires the full HTTP surface around an injected history store.
// start is the process start time used for uptime reporting.
func NewRouter(store *history.Store, start time.Time) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health(start))

	r.Handle("/metrics", observability.PrometheusHandler())

	emi.RegisterRoutes(r, emi.NewHandler(store, start))

	return r
}
