package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loan-emi-service/internal/emi"
	"loan-emi-service/internal/history"
	"loan-emi-service/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *history.Store) {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := emi.InitMetrics(); err != nil {
		t.Fatalf("initializing emi metrics: %v", err)
	}

	store := history.NewStore(history.DefaultCapacity)
	return NewRouter(store, time.Now()), store
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if body["status"] != "ok" {
		t.Fatalf("expected status %q, got %#v", "ok", body["status"])
	}
}

func TestNewRouterRootIndex(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := body["endpoints"]; !ok {
		t.Fatal("expected endpoints field in index response")
	}
}

func TestNewRouterCalculateSetsRequestIDHeader(t *testing.T) {
	router, store := newTestRouter(t)

	body := []byte(`{"loanAmount":100000,"interestRate":9.5,"tenureYears":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-emi", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if success, ok := payload["success"].(bool); !ok || !success {
		t.Fatalf("expected success true, got %#v", payload["success"])
	}

	if got := store.List(); len(got) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(got))
	}
}

func TestNewRouterValidationErrorLeavesStoreUntouched(t *testing.T) {
	router, store := newTestRouter(t)

	body := []byte(`{"interestRate":9.5,"tenureYears":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate-emi", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	if got := store.List(); len(got) != 0 {
		t.Fatalf("expected empty store after rejected request, got %d records", len(got))
	}
}

func TestNewRouterMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
