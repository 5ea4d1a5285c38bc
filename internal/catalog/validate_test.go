package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSampleCatalog(t *testing.T) {
	report, err := Validate(Sample())
	if err != nil {
		t.Fatalf("expected sample catalog to be valid, got %v", err)
	}
	if report.Entries != 5 {
		t.Fatalf("expected 5 entries, got %d", report.Entries)
	}
	if report.MultipleFeatured() {
		t.Fatalf("expected a single featured entry, got %v", report.Featured)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	entries := []Entry{
		{ID: "1", Name: "A", Category: "X"},
		{ID: "1", Name: "B", Category: "X"},
	}
	_, err := Validate(entries)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidateReportsFieldProblems(t *testing.T) {
	entries := []Entry{
		{ID: "", Name: "Nameless id", Category: "X"},
		{ID: "2", Name: "Negative", Category: "X", Price: -1},
		{ID: "3", Category: ""},
	}
	_, err := Validate(entries)
	if !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("expected invalid entry error, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"id is required", "price must be >= 0", "name is required", "category is required"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateAllowsMultipleFeatured(t *testing.T) {
	entries := []Entry{
		{ID: "1", Name: "A", Category: "X", Featured: true},
		{ID: "2", Name: "B", Category: "X", Featured: true},
	}
	report, err := Validate(entries)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !report.MultipleFeatured() {
		t.Fatalf("expected multiple featured to be reported, got %v", report.Featured)
	}
}
