package app

import (
	"context"

	"github.com/example/checkdigit/internal/ports/primary"
	"github.com/example/checkdigit/internal/ports/secondary"
)

// MethodServiceImpl implements the MethodService interface.
type MethodServiceImpl struct {
	registry secondary.MethodRegistry
}

// NewMethodService creates a new MethodService with injected dependencies.
func NewMethodService(registry secondary.MethodRegistry) *MethodServiceImpl {
	return &MethodServiceImpl{
		registry: registry,
	}
}

// ListMethods returns all supported methods sorted by identifier.
func (s *MethodServiceImpl) ListMethods(ctx context.Context) []primary.MethodInfo {
	descs := s.registry.List()

	methods := make([]primary.MethodInfo, len(descs))
	for i, d := range descs {
		methods[i] = primary.MethodInfo{
			ID:         d.ID,
			Summary:    d.Summary,
			MinBodyLen: d.MinBodyLen,
			MaxBodyLen: d.MaxBodyLen,
			CheckLen:   d.CheckLen,
		}
	}
	return methods
}
