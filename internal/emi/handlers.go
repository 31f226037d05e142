package emi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"loan-emi-service/internal/handlers"
	"loan-emi-service/internal/history"
	"loan-emi-service/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the EMI domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("emi")

// Handler serves the calculation endpoints. The history store is injected at
// construction; there is no package-level state beyond metric instruments.
type Handler struct {
	store *history.Store
	start time.Time
}

// NewHandler builds a Handler around the given store. start is the process
// start time used for uptime reporting.
func NewHandler(store *history.Store, start time.Time) *Handler {
	return &Handler{store: store, start: start}
}

// Calculate handles POST /api/calculate-emi: validate, compute, append to
// history, respond. Validation failures never touch the store.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "emi.calculate",
		trace.WithAttributes(
			attribute.String("emi.operation", "calculate"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		msg := "invalid request body"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			msg = fmt.Sprintf("%s must be a number", typeErr.Field)
		}
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", msg, err, http.StatusBadRequest, w)
		return
	}

	// Presence is checked before value validation so that a missing field is
	// reported as missing even when other fields are out of range.
	for _, f := range []struct {
		name  string
		unset bool
	}{
		{"loanAmount", req.LoanAmount == nil},
		{"interestRate", req.InterestRate == nil},
		{"tenureYears", req.TenureYears == nil},
	} {
		if f.unset {
			observability.RecordError(ctx, span, logger, errorCounter, "calculate",
				fmt.Sprintf("%s is required", f.name),
				fmt.Errorf("missing field %s", f.name), http.StatusBadRequest, w)
			return
		}
	}

	span.SetAttributes(
		attribute.Float64("emi.principal", *req.LoanAmount),
		attribute.Float64("emi.annual_rate_percent", *req.InterestRate),
		attribute.Int("emi.tenure_years", *req.TenureYears),
	)

	start := time.Now()
	result, err := Compute(*req.LoanAmount, *req.InterestRate, *req.TenureYears)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	rec := h.store.Append(history.Record{
		Principal:         *req.LoanAmount,
		AnnualRatePercent: *req.InterestRate,
		TenureYears:       *req.TenureYears,
		EMI:               result.EMI,
		TotalInterest:     result.TotalInterest,
		TotalPayment:      result.TotalPayment,
		LoanType:          req.LoanType,
	})

	attrs := metric.WithAttributes(attribute.String("loan_type", loanTypeLabel(req.LoanType)))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	emiGauge.Record(ctx, result.EMI, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("emi", result.EMI),
		attribute.Int64("calculation_id", rec.ID),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("emi.installment", result.EMI))
	span.SetStatus(codes.Ok, "")

	logger.Info("emi calculation completed",
		zap.Int64("calculation_id", rec.ID),
		zap.Float64("principal", *req.LoanAmount),
		zap.Float64("annual_rate_percent", *req.InterestRate),
		zap.Int("tenure_years", *req.TenureYears),
		zap.Float64("emi", result.EMI),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteData(w, http.StatusOK, CalculateData{
		EMI:             formatAmount(result.EMI),
		TotalPayment:    formatAmount(result.TotalPayment),
		TotalInterest:   formatAmount(result.TotalInterest),
		PrincipalAmount: formatAmount(*req.LoanAmount),
		CalculationID:   rec.ID,
	})
}

// History handles GET /api/calculation-history: the retained records,
// newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, span := tracer.Start(ctx, "emi.history",
		trace.WithAttributes(attribute.String("emi.operation", "history")),
	)
	defer span.End()

	records := h.store.List()
	span.SetAttributes(attribute.Int("emi.history_size", len(records)))
	span.SetStatus(codes.Ok, "")

	handlers.WriteData(w, http.StatusOK, records)
}

// Stats handles GET /api/stats: counts and totals over retained records only.
// Totals for evicted records are gone; that is the bounded-memory contract.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, span := tracer.Start(ctx, "emi.stats",
		trace.WithAttributes(attribute.String("emi.operation", "stats")),
	)
	defer span.End()

	count, total := h.store.Stats()
	span.SetAttributes(
		attribute.Int("emi.total_calculations", count),
		attribute.Float64("emi.total_loan_amount", total),
	)
	span.SetStatus(codes.Ok, "")

	handlers.WriteData(w, http.StatusOK, StatsData{
		TotalCalculations: count,
		TotalLoanAmount:   roundTo2Decimals(total),
		ServerUptime:      roundTo2Decimals(time.Since(h.start).Seconds()),
	})
}

// loanTypeLabel keeps the metric attribute cardinality bounded when the
// free-form loan type is absent.
func loanTypeLabel(loanType string) string {
	if loanType == "" {
		return "unspecified"
	}
	return loanType
}
