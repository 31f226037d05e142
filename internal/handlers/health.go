package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"
)

// Health returns the liveness handler for GET /health. It always answers
// 200 while the process is up, independent of any application state.
func Health(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    uptimeSeconds(start),
		})
	}
}

// Root handles GET /: an informational index of the API surface.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"message": "Loan EMI Calculator API",
		"endpoints": map[string]string{
			"calculate": "POST /api/calculate-emi",
			"history":   "GET /api/calculation-history",
			"stats":     "GET /api/stats",
			"health":    "GET /health",
			"metrics":   "GET /metrics",
		},
	})
}

func uptimeSeconds(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}
