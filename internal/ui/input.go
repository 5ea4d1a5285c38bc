package ui

import (
	"unicode"

	"github.com/atomicstack/menu-browser/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "(type to search)"

func (m *Model) updateSearchCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.searchCursor, cmd = m.searchCursor.Update(msg)
	return cmd
}

func (m *Model) noteSearchCursorChange(before int) {
	if before != m.view.SearchCursorPos() {
		m.searchCursorDirty = true
	}
}

// handleTextInput offers a key to the search field and reports whether it
// was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	v := m.view
	switch msg.String() {
	case "ctrl+u":
		before := v.SearchCursorPos()
		if !v.ClearSearch() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.Cleared()
		m.searchChanged()
		return true
	case "ctrl+w":
		before := v.SearchCursorPos()
		if !v.DeleteSearchWordBackward() {
			return false
		}
		m.noteSearchCursorChange(before)
		events.Search.WordBackspace(v.SearchTerm)
		m.searchChanged()
		return true
	case "ctrl+a":
		return m.moveSearchCursor(v.MoveSearchCursorStart, false)
	case "ctrl+e":
		return m.moveSearchCursor(v.MoveSearchCursorEnd, false)
	case "alt+b":
		return m.moveSearchCursor(v.MoveSearchCursorWordBackward, true)
	case "alt+f":
		return m.moveSearchCursor(v.MoveSearchCursorWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeSearchRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToSearch(" ")
	case tea.KeyLeft:
		return m.moveSearchCursor(v.MoveSearchCursorRuneBackward, false)
	case tea.KeyRight:
		return m.moveSearchCursor(v.MoveSearchCursorRuneForward, false)
	}
	return false
}

func (m *Model) moveSearchCursor(move func() bool, word bool) bool {
	before := m.view.SearchCursorPos()
	if !move() {
		return false
	}
	m.noteSearchCursorChange(before)
	if word {
		events.Search.CursorWord(m.view.SearchCursor)
	} else {
		events.Search.Cursor(m.view.SearchCursor)
	}
	return true
}

func (m *Model) appendToSearch(text string) bool {
	before := m.view.SearchCursorPos()
	if !m.view.InsertSearchText(text) {
		return false
	}
	m.noteSearchCursorChange(before)
	events.Search.Append(m.view.SearchTerm)
	m.searchChanged()
	return true
}

func (m *Model) removeSearchRune() bool {
	before := m.view.SearchCursorPos()
	if !m.view.DeleteSearchRuneBackward() {
		return false
	}
	m.noteSearchCursorChange(before)
	events.Search.Backspace(m.view.SearchTerm)
	m.searchChanged()
	return true
}

// searchChanged lands the cursor on the best match of the new term.
func (m *Model) searchChanged() {
	page := m.derive()
	m.view.PlaceCursor(page.Items)
	m.view.PruneExpanded(page.Items)
}

func (m *Model) searchPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.searchCursor.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		m.searchCursor.TextStyle = styles.Search.Copy()
	} else {
		m.searchCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.SearchPrompt != nil {
		prompt = styles.SearchPrompt.Render(prompt)
	}
	text := m.view.SearchTerm
	if text == "" {
		runes := []rune(searchPlaceholder)
		if styles.SearchPlaceholder != nil {
			m.searchCursor.TextStyle = styles.SearchPlaceholder.Copy()
		}
		caret := m.renderSearchCursor(string(runes[0]))
		return prompt + caret + render(styles.SearchPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.view.SearchCursorPos()
	before := render(styles.Search, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Search, string(runes[pos+1:]))
	}
	return prompt + before + m.renderSearchCursor(caretRune) + after
}

func (m *Model) renderSearchCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)

	base := m.searchCursor.TextStyle.Copy().Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
