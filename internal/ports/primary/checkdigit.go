// Package primary defines the service interfaces the CLI layer drives,
// together with their request/response types.
package primary

import "context"

// MethodInfo describes one supported checksum method for listing.
type MethodInfo struct {
	ID         string
	Summary    string
	MinBodyLen int
	MaxBodyLen int // 0 means unbounded
	CheckLen   int
}

// CalcResult is the per-input outcome of a calculate batch.
// Exactly one of Number or Err is set.
type CalcResult struct {
	Input  string // raw input as supplied, for correlation
	Number string // completed number (body + check digits)
	Err    error
}

// CheckResult is the per-input outcome of a check batch.
// Invalidity is a normal outcome, not an error.
type CheckResult struct {
	Input      string
	Normalized string // digits remaining after separator stripping
	Valid      bool
}

// CheckSummary aggregates a check batch.
type CheckSummary struct {
	Total    int
	Valid    int
	Invalid  int
	AllValid bool
}

// CheckReport bundles per-input results with the batch summary.
type CheckReport struct {
	Results []CheckResult
	Summary CheckSummary
}

// MethodService enumerates the supported checksum methods.
type MethodService interface {
	// ListMethods returns all methods sorted by identifier.
	ListMethods(ctx context.Context) []MethodInfo
}

// NumberService performs batch check-digit operations.
type NumberService interface {
	// CalculateBatch completes each input with its check digit(s).
	// One result per input, in input order; a bad entry yields an error
	// result without halting the rest. An unknown method aborts the
	// whole call with no partial results.
	CalculateBatch(ctx context.Context, method string, inputs []string) ([]CalcResult, error)

	// CheckBatch validates each input's check digit(s). Same batch
	// semantics as CalculateBatch.
	CheckBatch(ctx context.Context, method string, inputs []string) (*CheckReport, error)
}
