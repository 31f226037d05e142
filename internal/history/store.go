// Package history keeps a bounded, newest-first record of completed EMI
// calculations. Records live for the lifetime of the process only.
package history

import (
	"sync"
	"time"
)

// DefaultCapacity is the number of records retained before the oldest
// entries are evicted.
const DefaultCapacity = 10

// Record is one completed EMI calculation. Numeric results are stored at
// full float64 precision; rounding happens at the response boundary.
type Record struct {
	ID                int64     `json:"id"`
	Principal         float64   `json:"principal"`
	AnnualRatePercent float64   `json:"annualRatePercent"`
	TenureYears       int       `json:"tenureYears"`
	EMI               float64   `json:"emi"`
	TotalInterest     float64   `json:"totalInterest"`
	TotalPayment      float64   `json:"totalPayment"`
	LoanType          string    `json:"loanType,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Store holds the most recent calculation records, newest first.
// All methods are safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	records  []Record
	nextID   int64
	capacity int
}

// NewStore returns an empty store with the given capacity.
// A capacity of zero or less falls back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		records:  make([]Record, 0, capacity),
		nextID:   1,
		capacity: capacity,
	}
}

// Append assigns the next sequential ID to rec, stamps it if unstamped, and
// inserts it at the front, evicting the oldest entries beyond capacity.
// IDs keep increasing across evictions and are never reused.
func (s *Store) Append(rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	s.records = append([]Record{rec}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}

	return rec
}

// List returns a copy of the retained records, newest first.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Stats reports the count of retained records and the sum of their loan
// principals. Evicted records are not included; their totals are gone.
func (s *Store) Stats() (count int, totalLoanAmount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		totalLoanAmount += rec.Principal
	}
	return len(s.records), totalLoanAmount
}
