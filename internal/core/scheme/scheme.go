// Package scheme contains the pure check-digit algorithms.
// All operations are deterministic functions without side effects;
// callers are expected to strip separators before passing numbers in.
package scheme

import (
	"errors"
	"fmt"
)

// Sentinel errors for the small failure taxonomy shared by all schemes.
var (
	// ErrUnknownMethod is returned by registry lookups for unregistered identifiers.
	ErrUnknownMethod = errors.New("unknown method")

	// ErrInvalidLength is returned by Complete when the body length does not
	// match the scheme's expectation.
	ErrInvalidLength = errors.New("invalid length")

	// ErrMalformedInput is returned by Complete when the input contains
	// characters the scheme cannot interpret as digits.
	ErrMalformedInput = errors.New("malformed input")
)

// Descriptor describes one registered scheme. Created at registration
// time and immutable afterward.
type Descriptor struct {
	ID         string
	Summary    string
	MinBodyLen int
	MaxBodyLen int // 0 means unbounded
	CheckLen   int
}

// Algorithm is the capability every scheme variant implements.
type Algorithm interface {
	// Descriptor returns the scheme's metadata.
	Descriptor() Descriptor

	// Complete appends the correct check digit(s) to body.
	// The body must consist solely of digit characters and match the
	// scheme's expected body length.
	Complete(body string) (string, error)

	// IsValid recomputes the expected check digit(s) from the body
	// portion of full and compares against the supplied check portion.
	// Wrong length or bad characters yield false, never an error.
	IsValid(full string) bool
}

// checkBodyLen validates a body length against a descriptor's range.
func checkBodyLen(d Descriptor, n int) error {
	if n < d.MinBodyLen || (d.MaxBodyLen > 0 && n > d.MaxBodyLen) {
		return fmt.Errorf("%w: %s expects a %s body, got %d digits",
			ErrInvalidLength, d.ID, bodyLenHint(d), n)
	}
	return nil
}

func bodyLenHint(d Descriptor) string {
	if d.MaxBodyLen == 0 {
		return fmt.Sprintf("%d+ digit", d.MinBodyLen)
	}
	if d.MinBodyLen == d.MaxBodyLen {
		return fmt.Sprintf("%d-digit", d.MinBodyLen)
	}
	return fmt.Sprintf("%d-%d digit", d.MinBodyLen, d.MaxBodyLen)
}

// digitValues converts a string of decimal digit characters to their
// numeric values. Returns false if any character is not a digit.
func digitValues(s string) ([]int, bool) {
	vals := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		vals[i] = int(c - '0')
	}
	return vals, true
}
