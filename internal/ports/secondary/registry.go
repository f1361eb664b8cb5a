// Package secondary defines the ports the application services depend on.
package secondary

import "github.com/example/checkdigit/internal/core/scheme"

// MethodRegistry resolves method identifiers to algorithm implementations.
type MethodRegistry interface {
	// Lookup returns the algorithm registered under id, or an error
	// wrapping scheme.ErrUnknownMethod.
	Lookup(id string) (scheme.Algorithm, error)

	// List returns the descriptors of all registered schemes, sorted
	// by identifier.
	List() []scheme.Descriptor
}
