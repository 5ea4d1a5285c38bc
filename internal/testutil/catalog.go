// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/atomicstack/menu-browser/internal/catalog"
)

// NumberedEntries returns n entries named "Dish 1" through "Dish n" in a
// single category, priced at their position.
func NumberedEntries(n int, category string) []catalog.Entry {
	entries := make([]catalog.Entry, n)
	for i := range entries {
		id := strconv.Itoa(i + 1)
		entries[i] = catalog.Entry{
			ID:       id,
			Name:     "Dish " + id,
			Category: category,
			Price:    float64(i + 1),
		}
	}
	return entries
}

// WriteFile writes contents to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
