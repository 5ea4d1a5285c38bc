package source

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menu-browser/internal/testutil"
)

const yamlMenu = `
entries:
  - id: "10"
    name: Garlic Bread
    description: Toasted with butter and parsley
    price: 4.5
    category: Sides
    image: /images/garlic-bread.jpg
  - id: "11"
    name: Lemonade
    price: 3
    category: Drinks
    featured: true
`

func TestFileLoadsYAMLDocument(t *testing.T) {
	path := testutil.WriteFile(t, "menu.yaml", yamlMenu)
	entries, err := NewFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "Garlic Bread" || entries[0].Price != 4.5 || entries[0].Category != "Sides" {
		t.Fatalf("unexpected first entry %#v", entries[0])
	}
	if !entries[1].Featured || entries[1].Description != "" {
		t.Fatalf("unexpected second entry %#v", entries[1])
	}
}

func TestParseDocumentAcceptsBareJSONList(t *testing.T) {
	data := []byte(`[{"id":"1","name":"Soup","price":5.25,"category":"Starters","image":"/soup.jpg"}]`)
	entries, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(entries) != 1 || entries[0].Image != "/soup.jpg" {
		t.Fatalf("unexpected entries %#v", entries)
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	entries, err := ParseDocument([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}
}

func TestParseDocumentRejectsMalformedInput(t *testing.T) {
	if _, err := ParseDocument([]byte("entries: [oops")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFileLoadMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
