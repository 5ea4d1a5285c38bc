package state

import (
	"testing"

	"github.com/atomicstack/menu-browser/internal/catalog"
)

func TestInsertAndDeleteSearchText(t *testing.T) {
	v := NewView()

	if !v.InsertSearchText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if v.SearchTerm != "ab" || v.SearchCursor != 2 {
		t.Fatalf("unexpected search state %q/%d", v.SearchTerm, v.SearchCursor)
	}

	v.SearchCursor = 1
	if !v.InsertSearchText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if v.SearchTerm != "azb" || v.SearchCursor != 2 {
		t.Fatalf("unexpected search state %q/%d", v.SearchTerm, v.SearchCursor)
	}

	if !v.DeleteSearchRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if v.SearchTerm != "ab" || v.SearchCursor != 1 {
		t.Fatalf("unexpected search state after delete %q/%d", v.SearchTerm, v.SearchCursor)
	}

	v.SetSearch("abc def", len("abc def"))
	if !v.DeleteSearchWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if v.SearchTerm != "abc " {
		t.Fatalf("expected trailing word removed, got %q", v.SearchTerm)
	}

	v.SetSearch("abc", 0)
	if v.DeleteSearchRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
	if v.InsertSearchText("") {
		t.Fatal("expected empty insert to fail")
	}
	if !v.ClearSearch() || v.SearchTerm != "" {
		t.Fatal("expected search cleared")
	}
	if v.ClearSearch() {
		t.Fatal("expected clearing an empty search to be a no-op")
	}
}

func TestSearchCursorNavigation(t *testing.T) {
	v := NewView()
	v.SetSearch("one two", len("one two"))

	if !v.MoveSearchCursorWordBackward() || v.SearchCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", v.SearchCursor)
	}
	if !v.MoveSearchCursorWordForward() || v.SearchCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", v.SearchCursor)
	}
	if !v.MoveSearchCursorRuneBackward() || v.SearchCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", v.SearchCursor)
	}
	if !v.MoveSearchCursorRuneForward() || v.SearchCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", v.SearchCursor)
	}
	if v.MoveSearchCursorRuneForward() {
		t.Fatal("expected no movement past the end")
	}
	if !v.MoveSearchCursorStart() || v.SearchCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", v.SearchCursor)
	}
	if v.MoveSearchCursorRuneBackward() {
		t.Fatal("expected no movement before the start")
	}
	if !v.MoveSearchCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestSearchCursorHandlesMultibyteRunes(t *testing.T) {
	v := NewView()
	v.InsertSearchText("café")
	if v.SearchCursor != 4 {
		t.Fatalf("expected rune offset 4, got %d", v.SearchCursor)
	}
	v.DeleteSearchRuneBackward()
	if v.SearchTerm != "caf" {
		t.Fatalf("expected rune-wise delete, got %q", v.SearchTerm)
	}
}

func TestFilterEntries(t *testing.T) {
	entries := catalog.Sample()
	if got := FilterEntries(entries, ""); len(got) != len(entries) {
		t.Fatalf("expected empty term to match all, got %d", len(got))
	}
	got := FilterEntries(entries, "SALAD")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected Caesar Salad, got %#v", got)
	}
	if len(FilterEntries(entries, "sushi")) != 0 {
		t.Fatal("expected no matches")
	}
	got[0].Name = "changed"
	if entries[2].Name != "Caesar Salad" {
		t.Fatal("expected input unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := catalog.Sample()

	if idx := BestMatchIndex(items, "tiramisu"); idx != 4 {
		t.Fatalf("expected exact name match index 4, got %d", idx)
	}
	if idx := BestMatchIndex(items, "pep"); idx != 1 {
		t.Fatalf("expected prefix match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "carbon"); idx != 3 {
		t.Fatalf("expected substring match index 3, got %d", idx)
	}
	if idx := BestMatchIndex(items, "cslad"); idx != 2 {
		t.Fatalf("expected fuzzy match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestPlaceCursorAfterSearch(t *testing.T) {
	v := NewView()
	v.SetSearch("pepperoni", len("pepperoni"))
	page := Derive(sampleCatalog(), *v)
	v.PlaceCursor(page.Items)
	if v.Cursor != 0 || page.Items[v.Cursor].ID != "2" {
		t.Fatalf("expected cursor on Pepperoni, got %d", v.Cursor)
	}

	v.SetSearch("pizza", 5)
	page = Derive(sampleCatalog(), *v)
	v.PlaceCursor(page.Items)
	if page.Items[v.Cursor].ID != "1" {
		t.Fatalf("expected first substring match, got %s", page.Items[v.Cursor].ID)
	}
}
