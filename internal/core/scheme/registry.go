package scheme

import (
	"fmt"
	"sort"
)

// Registry maps method identifiers to their Algorithm implementations.
// It is populated once at construction and read-only afterward, so it
// is safe for concurrent use without locking.
type Registry struct {
	schemes map[string]Algorithm
}

// NewRegistry builds a registry from the given algorithms.
// Each identifier maps to exactly one implementation; registering the
// same identifier twice is a programming error and panics.
func NewRegistry(algorithms ...Algorithm) *Registry {
	r := &Registry{schemes: make(map[string]Algorithm, len(algorithms))}
	for _, alg := range algorithms {
		id := alg.Descriptor().ID
		if _, exists := r.schemes[id]; exists {
			panic(fmt.Sprintf("scheme %q registered twice", id))
		}
		r.schemes[id] = alg
	}
	return r
}

// DefaultRegistry returns a registry holding every supported scheme.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewEAN8(),
		NewEAN13(),
		NewUPC(),
		NewISBN10(),
		NewISBN13(),
		NewLuhn(),
	)
}

// Lookup returns the algorithm registered under id.
func (r *Registry) Lookup(id string) (Algorithm, error) {
	alg, ok := r.schemes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (run `checkdigit methods` for the list)", ErrUnknownMethod, id)
	}
	return alg, nil
}

// List returns the descriptors of all registered schemes, sorted by
// identifier.
func (r *Registry) List() []Descriptor {
	descs := make([]Descriptor, 0, len(r.schemes))
	for _, alg := range r.schemes {
		descs = append(descs, alg.Descriptor())
	}
	sort.Slice(descs, func(i, j int) bool {
		return descs[i].ID < descs[j].ID
	})
	return descs
}
