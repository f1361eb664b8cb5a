package scheme

import (
	"errors"
	"sort"
	"testing"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := DefaultRegistry()

	for _, id := range []string{"ean8", "ean13", "upc", "isbn10", "isbn13", "luhn"} {
		alg, err := reg.Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", id, err)
			continue
		}
		if alg.Descriptor().ID != id {
			t.Errorf("Lookup(%q) returned scheme %q", id, alg.Descriptor().ID)
		}
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := DefaultRegistry()

	_, err := reg.Lookup("no-such-method")
	if err == nil {
		t.Fatal("Lookup of unknown method succeeded")
	}
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("error = %v, want ErrUnknownMethod", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	descs := DefaultRegistry().List()

	if len(descs) != 6 {
		t.Fatalf("expected 6 schemes, got %d", len(descs))
	}

	ids := make([]string, len(descs))
	for i, d := range descs {
		ids[i] = d.ID
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("List not sorted by identifier: %v", ids)
	}
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	NewRegistry(NewEAN8(), NewEAN8())
}
