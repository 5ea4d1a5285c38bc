package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(storeWith(nil), 0, 0, false, nil)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")}) {
		t.Fatalf("expected key press to be handled")
	}
	if m.view.SearchTerm != "abc" {
		t.Fatalf("expected search 'abc', got %q", m.view.SearchTerm)
	}
	if pos := m.view.SearchCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if !m.searchCursorDirty {
		t.Fatalf("expected cursor marked dirty")
	}
}

func TestHandleTextInputIgnoresAltRunes(t *testing.T) {
	m := NewModel(storeWith(nil), 0, 0, false, nil)
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1"), Alt: true}) {
		t.Fatalf("expected alt runes left for shortcuts")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(storeWith(nil), 0, 0, false, nil)
	m.view.SetSearch("ab cd", 5)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) || m.view.SearchCursorPos() != 4 {
		t.Fatalf("expected cursor at 4 after left, got %d", m.view.SearchCursorPos())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) || m.view.SearchCursorPos() != 5 {
		t.Fatalf("expected cursor back at 5, got %d", m.view.SearchCursorPos())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlA}) || m.view.SearchCursorPos() != 0 {
		t.Fatalf("expected cursor at start, got %d", m.view.SearchCursorPos())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true}) || m.view.SearchCursorPos() != 3 {
		t.Fatalf("expected alt+f to skip a word, got %d", m.view.SearchCursorPos())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlE}) || m.view.SearchCursorPos() != 5 {
		t.Fatalf("expected cursor at end, got %d", m.view.SearchCursorPos())
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Alt: true}) || m.view.SearchCursorPos() != 3 {
		t.Fatalf("expected alt+b to move back a word, got %d", m.view.SearchCursorPos())
	}
}

func TestHandleTextInputDeletion(t *testing.T) {
	m := NewModel(storeWith(nil), 0, 0, false, nil)
	m.view.SetSearch("ab cd", 5)
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) || m.view.SearchTerm != "ab c" {
		t.Fatalf("expected backspace to drop a rune, got %q", m.view.SearchTerm)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}) || m.view.SearchTerm != "ab " {
		t.Fatalf("expected ctrl+w to drop a word, got %q", m.view.SearchTerm)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) || m.view.SearchTerm != "" {
		t.Fatalf("expected ctrl+u to clear, got %q", m.view.SearchTerm)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u on empty search to fall through")
	}
}

func TestSpaceIsPartOfSearch(t *testing.T) {
	h := sampleHarness()
	h.Type("caesar salad")
	if got := h.Model().view.SearchTerm; got != "caesar salad" {
		t.Fatalf("expected space kept in search, got %q", got)
	}
	if !strings.Contains(h.View(), "Caesar Salad") {
		t.Fatalf("expected match, got:\n%s", h.View())
	}
}

func TestSearchPromptPlaceholder(t *testing.T) {
	m := NewModel(storeWith(nil), 0, 0, false, nil)
	prompt := m.searchPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	m.view.SetSearch("pizza", 5)
	if prompt := m.searchPrompt(); !strings.Contains(prompt, "pizza") || strings.Contains(prompt, "type to search") {
		t.Fatalf("expected search text in prompt, got %q", prompt)
	}
}
