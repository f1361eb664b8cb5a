package scheme

import "fmt"

// isbn10Scheme implements the ISBN-10 checksum: body digits weighted
// 10 down to 2 left to right, summed modulo 11. A check value of 10 is
// written as the character "X".
type isbn10Scheme struct {
	desc Descriptor
}

// NewISBN10 returns the ISBN-10 scheme (9-digit body).
func NewISBN10() Algorithm {
	return &isbn10Scheme{
		desc: Descriptor{
			ID:         "isbn10",
			Summary:    "ISBN-10 book number (9-digit body, mod 11, X check character)",
			MinBodyLen: 9,
			MaxBodyLen: 9,
			CheckLen:   1,
		},
	}
}

func (s *isbn10Scheme) Descriptor() Descriptor {
	return s.desc
}

func (s *isbn10Scheme) Complete(body string) (string, error) {
	digits, ok := digitValues(body)
	if !ok {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrMalformedInput, body)
	}
	if err := checkBodyLen(s.desc, len(digits)); err != nil {
		return "", err
	}

	check := isbn10Check(digits)
	if check == 10 {
		return body + "X", nil
	}
	return body + string(rune('0'+check)), nil
}

func (s *isbn10Scheme) IsValid(full string) bool {
	if len(full) != s.desc.MinBodyLen+s.desc.CheckLen {
		return false
	}

	digits, ok := digitValues(full[:9])
	if !ok {
		return false
	}

	var supplied int
	switch c := full[9]; {
	case c >= '0' && c <= '9':
		supplied = int(c - '0')
	case c == 'X':
		supplied = 10
	default:
		return false
	}

	return isbn10Check(digits) == supplied
}

// isbn10Check derives the check value (0-10) for a 9-digit body.
func isbn10Check(digits []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (10 - i)
	}
	return (11 - sum%11) % 11
}
