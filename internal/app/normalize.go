package app

import (
	"fmt"
	"strings"

	"github.com/example/checkdigit/internal/core/scheme"
)

// normalizeNumber strips separator characters (spaces, hyphens, dots and
// anything else that is not part of the number) from a raw input.
// Decimal digits are kept; so is X (uppercased), which ISBN-10 uses as
// its check character. Returns scheme.ErrMalformedInput when nothing
// usable remains.
func normalizeNumber(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == 'X' || c == 'x':
			b.WriteByte('X')
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q contains no digits", scheme.ErrMalformedInput, raw)
	}
	return b.String(), nil
}
