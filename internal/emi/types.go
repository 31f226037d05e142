package emi

// CalculateRequest is the JSON body for POST /api/calculate-emi.
// The three numeric fields are pointers so that an absent field can be
// told apart from a zero value.
type CalculateRequest struct {
	LoanAmount   *float64 `json:"loanAmount"`
	InterestRate *float64 `json:"interestRate"`
	TenureYears  *int     `json:"tenureYears"`
	LoanType     string   `json:"loanType,omitempty"` // free-form label, e.g. "home", "car"
}

// CalculateData is the data payload for a successful calculation. The four
// monetary fields are strings formatted to exactly two decimal places.
type CalculateData struct {
	EMI             string `json:"emi"`
	TotalPayment    string `json:"totalPayment"`
	TotalInterest   string `json:"totalInterest"`
	PrincipalAmount string `json:"principalAmount"`
	CalculationID   int64  `json:"calculationId"`
}

// StatsData is the data payload for GET /api/stats. Totals cover only the
// records currently retained by the history store.
type StatsData struct {
	TotalCalculations int     `json:"totalCalculations"`
	TotalLoanAmount   float64 `json:"totalLoanAmount"`
	ServerUptime      float64 `json:"serverUptime"` // seconds
}
