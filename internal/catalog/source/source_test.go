package source

import (
	"context"
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"":         KindStatic,
		"static":   KindStatic,
		" File ":   KindFile,
		"DYNAMODB": KindDynamoDB,
		"postgres": KindPostgres,
	}
	for input, want := range cases {
		got, err := ParseKind(input)
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseKind("firestore"); !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected unknown source error, got %v", err)
	}
}

func TestConfigCheckRequiresKindSettings(t *testing.T) {
	if err := (Config{Kind: KindFile}).Check(); !errors.Is(err, ErrMissingPath) {
		t.Fatalf("expected missing path, got %v", err)
	}
	if err := (Config{Kind: KindDynamoDB}).Check(); !errors.Is(err, ErrMissingTable) {
		t.Fatalf("expected missing table, got %v", err)
	}
	if err := (Config{Kind: KindPostgres}).Check(); !errors.Is(err, ErrMissingDSN) {
		t.Fatalf("expected missing dsn, got %v", err)
	}
	if err := (Config{}).Check(); err != nil {
		t.Fatalf("expected static default to need nothing, got %v", err)
	}
}

func TestNewStaticIsSynchronous(t *testing.T) {
	src, err := New(context.Background(), Config{Kind: KindStatic})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !IsSynchronous(src) {
		t.Fatalf("expected static source to be synchronous")
	}
	entries, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 sample entries, got %d", len(entries))
	}
	entries[0].Name = "changed"
	again, _ := src.Load(context.Background())
	if again[0].Name != "Margherita Pizza" {
		t.Fatalf("expected static source to hand out copies")
	}
}

func TestNewFileSourceIsAsynchronous(t *testing.T) {
	src, err := New(context.Background(), Config{Kind: KindFile, Path: "menu.yaml"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if IsSynchronous(src) {
		t.Fatalf("expected file source to load asynchronously")
	}
	if src.Name() != "file:menu.yaml" {
		t.Fatalf("unexpected name %q", src.Name())
	}
}
