package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetSearch replaces the search term and moves the search cursor. A changed
// term resets paging.
func (v *View) SetSearch(term string, cursor int) {
	runes := []rune(term)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	changed := term != v.SearchTerm
	v.SearchTerm = term
	v.SearchCursor = cursor
	if changed {
		v.resetPage()
	}
}

// SearchCursorPos returns the rune offset of the search cursor.
func (v *View) SearchCursorPos() int {
	runes := []rune(v.SearchTerm)
	if v.SearchCursor < 0 {
		return 0
	}
	if v.SearchCursor > len(runes) {
		return len(runes)
	}
	return v.SearchCursor
}

// InsertSearchText inserts text at the search cursor.
func (v *View) InsertSearchText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(v.SearchTerm)
	pos := v.SearchCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	v.SetSearch(string(updated), pos+len(insert))
	return true
}

// DeleteSearchRuneBackward deletes the rune before the search cursor.
func (v *View) DeleteSearchRuneBackward() bool {
	runes := []rune(v.SearchTerm)
	pos := v.SearchCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	v.SetSearch(string(updated), pos-1)
	return true
}

// DeleteSearchWordBackward deletes the word preceding the search cursor.
func (v *View) DeleteSearchWordBackward() bool {
	runes := []rune(v.SearchTerm)
	pos := v.SearchCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	v.SetSearch(string(updated), i)
	return true
}

// ClearSearch empties the search term.
func (v *View) ClearSearch() bool {
	if v.SearchTerm == "" {
		return false
	}
	v.SetSearch("", 0)
	return true
}

// MoveSearchCursorStart moves the search cursor to the start.
func (v *View) MoveSearchCursorStart() bool {
	if v.SearchCursorPos() == 0 {
		return false
	}
	v.SearchCursor = 0
	return true
}

// MoveSearchCursorEnd moves the search cursor to the end.
func (v *View) MoveSearchCursorEnd() bool {
	end := len([]rune(v.SearchTerm))
	if v.SearchCursorPos() == end {
		return false
	}
	v.SearchCursor = end
	return true
}

// MoveSearchCursorWordBackward moves the search cursor one word backward.
func (v *View) MoveSearchCursorWordBackward() bool {
	runes := []rune(v.SearchTerm)
	pos := v.SearchCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	v.SearchCursor = i
	return true
}

// MoveSearchCursorWordForward moves the search cursor one word forward.
func (v *View) MoveSearchCursorWordForward() bool {
	runes := []rune(v.SearchTerm)
	pos := v.SearchCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	v.SearchCursor = i
	return true
}

// MoveSearchCursorRuneBackward moves the search cursor one rune backward.
func (v *View) MoveSearchCursorRuneBackward() bool {
	if v.SearchCursorPos() == 0 {
		return false
	}
	v.SearchCursor = v.SearchCursorPos() - 1
	return true
}

// MoveSearchCursorRuneForward moves the search cursor one rune forward.
func (v *View) MoveSearchCursorRuneForward() bool {
	pos := v.SearchCursorPos()
	if pos >= len([]rune(v.SearchTerm)) {
		return false
	}
	v.SearchCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// Matches reports whether the entry's name or description contains term,
// ignoring case. The empty term matches every entry.
func Matches(entry catalog.Entry, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(entry.Name), lower) ||
		strings.Contains(strings.ToLower(entry.Description), lower)
}

// FilterEntries returns the entries matching term, in input order.
func FilterEntries(entries []catalog.Entry, term string) []catalog.Entry {
	if term == "" {
		return catalog.CloneEntries(entries)
	}
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if Matches(entry, term) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the entry that best matches query, or
// -1 when items is empty.
func BestMatchIndex(items []catalog.Entry, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Name, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Name), lower) {
			return i
		}
	}
	for i, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			return i
		}
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return 0
	}
	return best.OriginalIndex
}

// PlaceCursor moves the cursor onto the best search match among visible.
func (v *View) PlaceCursor(visible []catalog.Entry) {
	if idx := BestMatchIndex(visible, v.SearchTerm); idx >= 0 {
		v.Cursor = idx
		return
	}
	v.Cursor = 0
}
