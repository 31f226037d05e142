package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthAlwaysOK(t *testing.T) {
	start := time.Now().Add(-3 * time.Second)
	h := Health(start)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Status    string  `json:"status"`
		Timestamp string  `json:"timestamp"`
		Uptime    float64 `json:"uptime"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if body.Status != "ok" {
		t.Fatalf("expected status %q, got %q", "ok", body.Status)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("expected RFC3339 timestamp, got %q: %v", body.Timestamp, err)
	}
	if body.Uptime < 3 {
		t.Fatalf("expected uptime >= 3s, got %g", body.Uptime)
	}
}

func TestRootListsEndpoints(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	Root(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Message   string            `json:"message"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}

	if body.Message == "" {
		t.Fatal("expected a message")
	}
	if got := body.Endpoints["calculate"]; got != "POST /api/calculate-emi" {
		t.Fatalf("expected calculate endpoint, got %q", got)
	}
}
