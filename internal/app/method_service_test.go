package app

import (
	"context"
	"testing"

	"github.com/example/checkdigit/internal/core/scheme"
)

func TestListMethods(t *testing.T) {
	svc := NewMethodService(scheme.DefaultRegistry())

	methods := svc.ListMethods(context.Background())
	if len(methods) != 6 {
		t.Fatalf("expected 6 methods, got %d", len(methods))
	}

	for i := 1; i < len(methods); i++ {
		if methods[i-1].ID >= methods[i].ID {
			t.Errorf("methods not sorted: %q before %q", methods[i-1].ID, methods[i].ID)
		}
	}

	byID := make(map[string]bool)
	for _, m := range methods {
		byID[m.ID] = true
		if m.Summary == "" {
			t.Errorf("method %q has no summary", m.ID)
		}
		if m.CheckLen < 1 {
			t.Errorf("method %q has check length %d", m.ID, m.CheckLen)
		}
	}
	for _, id := range []string{"ean8", "ean13", "upc", "isbn10", "isbn13", "luhn"} {
		if !byID[id] {
			t.Errorf("method %q missing from listing", id)
		}
	}
}
