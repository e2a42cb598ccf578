package transaction

import (
	"fmt"
	"time"
)

const (
	// MaxRowsPerUpload is enforced on the parsed row count before any
	// validation work begins.
	MaxRowsPerUpload = 1000

	// MaxRecordedErrors caps how many row-level messages an import report
	// carries. Validation keeps counting past the cap; only recording stops.
	MaxRecordedErrors = 100

	MinYear   = 2000
	MaxYear   = 2100
	MaxAmount = 100000

	MaxTypeLength = 50
)

// Record is one raw tabular record: header name (arbitrary case) to cell
// value, as produced by the file parser.
type Record map[string]string

// RawRow is a record normalized to the five fixed columns, before
// validation. Missing fields are the empty string; a missing amount is "0".
type RawRow struct {
	Email  string
	Date   string
	Amount string
	Type   string
	Status string
}

// ImportRow is a validated, canonical row ready for bulk submission.
// Email is lowercased and trimmed, Type trimmed, Status lowercased.
type ImportRow struct {
	UserID string  `json:"user_id,omitempty"`
	Email  string  `json:"email"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
}

// ValidationError ties one failed rule to a human-visible row number
// (1-based, header row included, so the first data row is 2).
type ValidationError struct {
	RowNumber int
	Message   string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("Row %d: %s", e.RowNumber, e.Message)
}

// Resolution is the outcome of an email-to-user lookup. An unknown email is
// an expected condition, not an error.
type Resolution struct {
	UserID string
	Found  bool
}

// ImportResult is the terminal state of an import run. There is no separate
// failure state; a failed run is a result with SuccessCount zero.
type ImportResult struct {
	SuccessCount int      `json:"success_count"`
	Errors       []string `json:"errors"`
}

// BulkOutcome is the remote bulk endpoint's response.
type BulkOutcome struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

// ImportRunRecord is the audit-trail entry written after a run finishes.
type ImportRunRecord struct {
	Filename     string
	TotalRows    int
	ValidRows    int
	SuccessCount int
	Errors       []string
	Duration     time.Duration
}
