package scheme

import "fmt"

// luhnScheme implements the Luhn mod-10 algorithm used by payment card
// and loyalty order numbers. Every second digit counted from the right
// of the complete number is doubled; doubled values above 9 have 9
// subtracted before summing.
type luhnScheme struct {
	desc Descriptor
}

// NewLuhn returns the Luhn scheme. The body length is variable.
func NewLuhn() Algorithm {
	return &luhnScheme{
		desc: Descriptor{
			ID:         "luhn",
			Summary:    "Luhn mod-10 (variable-length body, card and account numbers)",
			MinBodyLen: 1,
			MaxBodyLen: 0,
			CheckLen:   1,
		},
	}
}

func (l *luhnScheme) Descriptor() Descriptor {
	return l.desc
}

func (l *luhnScheme) Complete(body string) (string, error) {
	digits, ok := digitValues(body)
	if !ok {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrMalformedInput, body)
	}
	if err := checkBodyLen(l.desc, len(digits)); err != nil {
		return "", err
	}

	// The check digit occupies the rightmost (undoubled) position, so
	// the body digits are summed as if a zero were already appended.
	sum := luhnSum(append(digits, 0))
	check := (10 - sum%10) % 10

	return body + string(rune('0'+check)), nil
}

func (l *luhnScheme) IsValid(full string) bool {
	if len(full) < l.desc.MinBodyLen+l.desc.CheckLen {
		return false
	}
	digits, ok := digitValues(full)
	if !ok {
		return false
	}
	return luhnSum(digits)%10 == 0
}

// luhnSum computes the Luhn digit sum over a complete number, doubling
// every second digit from the right.
func luhnSum(digits []int) int {
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if (len(digits)-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum
}
