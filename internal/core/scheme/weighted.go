package scheme

import "fmt"

// weightedScheme implements the EAN/UPC family: each body digit is
// multiplied by an alternating weight counted from the leftmost digit,
// the products are summed, and the check digit is the mod-10 complement.
type weightedScheme struct {
	desc    Descriptor
	weights [2]int // applied left to right, alternating
}

// NewEAN8 returns the EAN-8 scheme (7-digit body, weights 3,1,...).
func NewEAN8() Algorithm {
	return &weightedScheme{
		desc: Descriptor{
			ID:         "ean8",
			Summary:    "EAN-8 article number (7-digit body, weighted mod 10)",
			MinBodyLen: 7,
			MaxBodyLen: 7,
			CheckLen:   1,
		},
		weights: [2]int{3, 1},
	}
}

// NewEAN13 returns the EAN-13 scheme (12-digit body, weights 1,3,...).
func NewEAN13() Algorithm {
	return &weightedScheme{
		desc: Descriptor{
			ID:         "ean13",
			Summary:    "EAN-13 article number (12-digit body, weighted mod 10)",
			MinBodyLen: 12,
			MaxBodyLen: 12,
			CheckLen:   1,
		},
		weights: [2]int{1, 3},
	}
}

// NewUPC returns the UPC-A scheme (11-digit body, weights 3,1,...).
func NewUPC() Algorithm {
	return &weightedScheme{
		desc: Descriptor{
			ID:         "upc",
			Summary:    "UPC-A product code (11-digit body, weighted mod 10)",
			MinBodyLen: 11,
			MaxBodyLen: 11,
			CheckLen:   1,
		},
		weights: [2]int{3, 1},
	}
}

// NewISBN13 returns the ISBN-13 scheme. The checksum is identical to
// EAN-13; it is registered separately so users can name it directly.
func NewISBN13() Algorithm {
	return &weightedScheme{
		desc: Descriptor{
			ID:         "isbn13",
			Summary:    "ISBN-13 book number (12-digit body, weighted mod 10)",
			MinBodyLen: 12,
			MaxBodyLen: 12,
			CheckLen:   1,
		},
		weights: [2]int{1, 3},
	}
}

func (w *weightedScheme) Descriptor() Descriptor {
	return w.desc
}

func (w *weightedScheme) Complete(body string) (string, error) {
	digits, ok := digitValues(body)
	if !ok {
		return "", fmt.Errorf("%w: %q contains non-digit characters", ErrMalformedInput, body)
	}
	if err := checkBodyLen(w.desc, len(digits)); err != nil {
		return "", err
	}

	sum := 0
	for i, d := range digits {
		sum += d * w.weights[i%2]
	}
	check := (10 - sum%10) % 10

	return body + string(rune('0'+check)), nil
}

func (w *weightedScheme) IsValid(full string) bool {
	if len(full) != w.desc.MinBodyLen+w.desc.CheckLen {
		return false
	}
	if _, ok := digitValues(full); !ok {
		return false
	}

	body := full[:len(full)-w.desc.CheckLen]
	expected, err := w.Complete(body)
	if err != nil {
		return false
	}
	return expected == full
}
