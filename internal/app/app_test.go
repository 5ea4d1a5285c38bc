package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/menu-browser/internal/catalog/source"
	"github.com/atomicstack/menu-browser/internal/testutil"
)

func TestNewModelStaticSourceLoadsImmediately(t *testing.T) {
	model, cleanup, err := NewModel(context.Background(), Config{Source: source.Config{Kind: source.KindStatic}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	view := model.View()
	if !strings.Contains(view, "Margherita Pizza") {
		t.Fatalf("expected sample catalog rendered, got:\n%s", view)
	}
	if model.Init() == nil {
		t.Fatalf("expected init to focus the search cursor")
	}
}

func TestNewModelFileSourceLoadsInBackground(t *testing.T) {
	doc := "entries:\n  - id: soup\n    name: Tomato Soup\n    price: 5\n    category: Starters\n"
	path := testutil.WriteFile(t, "menu.yaml", doc)
	model, cleanup, err := NewModel(context.Background(), Config{Source: source.Config{Kind: source.KindFile, Path: path}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if !strings.Contains(model.View(), "Loading menu") {
		t.Fatalf("expected loading state before the event arrives, got:\n%s", model.View())
	}
	if model.Init() == nil {
		t.Fatalf("expected init to wait for the loader")
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	_, _, err := NewModel(context.Background(), Config{Source: source.Config{Kind: source.KindFile}})
	if !errors.Is(err, source.ErrMissingPath) {
		t.Fatalf("expected missing path error, got %v", err)
	}
}
