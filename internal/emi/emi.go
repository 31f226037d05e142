// Package emi computes equated monthly installments for amortized loans and
// serves the calculation endpoints.
package emi

import (
	"fmt"
	"math"
)

// Result holds the outcome of one EMI computation at full float64 precision.
type Result struct {
	EMI           float64
	TotalPayment  float64
	TotalInterest float64
	TenureMonths  int
}

// Compute applies the standard amortization formula:
//
//	monthlyRate = annualRatePercent / 12 / 100
//	n           = tenureYears * 12
//	emi         = principal * monthlyRate * (1+monthlyRate)^n / ((1+monthlyRate)^n - 1)
//
// It is a pure function: no state, no I/O. All three inputs must be positive.
// Very small positive rates are computed as-is, with no simple-interest
// fallback.
func Compute(principal, annualRatePercent float64, tenureYears int) (Result, error) {
	if math.IsNaN(principal) || math.IsInf(principal, 0) || principal <= 0 {
		return Result{}, fmt.Errorf("loanAmount must be a positive number, got %g", principal)
	}
	if math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0) || annualRatePercent <= 0 {
		return Result{}, fmt.Errorf("interestRate must be a positive number, got %g", annualRatePercent)
	}
	if tenureYears <= 0 {
		return Result{}, fmt.Errorf("tenureYears must be a positive number, got %d", tenureYears)
	}

	monthlyRate := annualRatePercent / 12 / 100
	n := tenureYears * 12

	power := math.Pow(1+monthlyRate, float64(n))
	installment := principal * monthlyRate * power / (power - 1)
	totalPayment := installment * float64(n)

	return Result{
		EMI:           installment,
		TotalPayment:  totalPayment,
		TotalInterest: totalPayment - principal,
		TenureMonths:  n,
	}, nil
}

// formatAmount renders a monetary value with exactly two decimal places.
// fmt rounds half away from zero, matching fixed-point display formatting.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// roundTo2Decimals rounds a value to two decimal places for numeric
// display fields.
func roundTo2Decimals(v float64) float64 {
	return math.Round(v*100) / 100
}
