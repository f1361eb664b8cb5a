package app

import (
	"context"
	"fmt"

	"github.com/example/checkdigit/internal/ports/primary"
	"github.com/example/checkdigit/internal/ports/secondary"
)

// NumberServiceImpl implements the NumberService interface.
type NumberServiceImpl struct {
	registry secondary.MethodRegistry
}

// NewNumberService creates a new NumberService with injected dependencies.
func NewNumberService(registry secondary.MethodRegistry) *NumberServiceImpl {
	return &NumberServiceImpl{
		registry: registry,
	}
}

// CalculateBatch completes each input with its check digit(s).
// A per-entry failure is recorded in that entry's result; subsequent
// entries are still processed. An unknown method aborts the whole call.
func (s *NumberServiceImpl) CalculateBatch(ctx context.Context, method string, inputs []string) ([]primary.CalcResult, error) {
	alg, err := s.registry.Lookup(method)
	if err != nil {
		return nil, fmt.Errorf("failed to select method: %w", err)
	}

	results := make([]primary.CalcResult, len(inputs))
	for i, input := range inputs {
		results[i].Input = input

		body, err := normalizeNumber(input)
		if err != nil {
			results[i].Err = err
			continue
		}

		completed, err := alg.Complete(body)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Number = completed
	}
	return results, nil
}

// CheckBatch validates each input's check digit(s). Malformed or
// wrong-length entries count as invalid; only an unknown method is an
// error.
func (s *NumberServiceImpl) CheckBatch(ctx context.Context, method string, inputs []string) (*primary.CheckReport, error) {
	alg, err := s.registry.Lookup(method)
	if err != nil {
		return nil, fmt.Errorf("failed to select method: %w", err)
	}

	report := &primary.CheckReport{
		Results: make([]primary.CheckResult, len(inputs)),
	}
	for i, input := range inputs {
		report.Results[i].Input = input

		normalized, err := normalizeNumber(input)
		if err != nil {
			// No digits at all: invalid, but still one result per input.
			continue
		}
		report.Results[i].Normalized = normalized
		report.Results[i].Valid = alg.IsValid(normalized)
	}

	report.Summary.Total = len(report.Results)
	for _, r := range report.Results {
		if r.Valid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}
	report.Summary.AllValid = report.Summary.Invalid == 0

	return report, nil
}
