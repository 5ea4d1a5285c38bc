package ui

import (
	"strings"

	"github.com/atomicstack/menu-browser/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Expand):
		m.toggleExpanded()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.view.MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.view.MoveCursorDown)
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.view.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.view.MoveCursorEnd)
	case key.Matches(keyMsg, m.keys.NextPage):
		m.nextPage()
	case key.Matches(keyMsg, m.keys.PrevPage):
		m.previousPage()
	case key.Matches(keyMsg, m.keys.NextCategory):
		m.focusCategory(m.view.FocusNextCategory)
	case key.Matches(keyMsg, m.keys.PrevCategory):
		m.focusCategory(m.view.FocusPreviousCategory)
	case key.Matches(keyMsg, m.keys.ToggleCategory):
		m.toggleCategoryAt(m.view.CategoryFocus)
	default:
		if idx, ok := categoryShortcut(keyMsg.String()); ok {
			m.toggleCategoryAt(idx)
		}
	}
	return nil
}

// categoryShortcut maps alt+1 through alt+9 to a zero-based category index.
func categoryShortcut(s string) (int, bool) {
	digit, ok := strings.CutPrefix(s, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return 0, false
	}
	return int(digit[0] - '1'), true
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.view.ClearCategory() {
		events.Category.Toggle("", "")
		m.refresh()
		return nil
	}
	return tea.Quit
}

func (m *Model) moveCursor(move func(int) bool) {
	page := m.derive()
	if !move(len(page.Items)) {
		return
	}
	events.Entry.Cursor(m.view.Cursor, page.Items[m.view.Cursor].ID)
}

func (m *Model) toggleExpanded() {
	page := m.derive()
	if len(page.Items) == 0 {
		return
	}
	m.view.ClampCursor(len(page.Items))
	id := page.Items[m.view.Cursor].ID
	events.Entry.Expand(id, m.view.ToggleExpanded(id))
}

func (m *Model) nextPage() {
	page := m.derive()
	if m.view.NextPage(page.TotalPages) {
		events.Page.Change(m.view.CurrentPage, page.TotalPages)
		m.refresh()
	}
}

func (m *Model) previousPage() {
	page := m.derive()
	if m.view.PreviousPage() {
		events.Page.Change(m.view.CurrentPage, page.TotalPages)
		m.refresh()
	}
}

func (m *Model) focusCategory(move func(int) bool) {
	names := m.catalogs.Catalog().CategoryNames()
	if !move(len(names)) {
		return
	}
	events.Category.Focus(m.view.CategoryFocus, names[m.view.CategoryFocus])
}

func (m *Model) toggleCategoryAt(idx int) {
	names := m.catalogs.Catalog().CategoryNames()
	if idx < 0 || idx >= len(names) {
		return
	}
	m.view.CategoryFocus = idx
	selected := m.view.ToggleCategory(names[idx])
	events.Category.Toggle(names[idx], selected)
	m.refresh()
}
