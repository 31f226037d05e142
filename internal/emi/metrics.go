package emi

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	calcCounter   metric.Int64Counter
	calcHistogram metric.Float64Histogram
	errorCounter  metric.Int64Counter
	emiGauge      metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the EMI domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("emi")

	var err error

	calcCounter, err = meter.Int64Counter("emi.calculations.total",
		metric.WithDescription("Total number of EMI calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculation counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("emi.calculation.duration",
		metric.WithDescription("Duration of EMI calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("emi.errors.total",
		metric.WithDescription("Total number of rejected calculation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	emiGauge, err = meter.Float64Gauge("emi.last_installment",
		metric.WithDescription("The monthly installment of the last calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating installment gauge: %w", err)
	}

	return nil
}
