package emi

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculation endpoints onto the given router
// under the /api prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate-emi", h.Calculate)
		r.Get("/calculation-history", h.History)
		r.Get("/stats", h.Stats)
	})
}
