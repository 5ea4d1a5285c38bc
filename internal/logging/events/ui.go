package events

import "github.com/atomicstack/menu-browser/internal/logging"

type SearchTracer struct{}

type CategoryTracer struct{}

type PageTracer struct{}

type EntryTracer struct{}

var (
	Search   = SearchTracer{}
	Category = CategoryTracer{}
	Page     = PageTracer{}
	Entry    = EntryTracer{}
)

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}

func (SearchTracer) Append(term string) {
	logging.Trace("search.append", map[string]interface{}{"term": term})
}

func (SearchTracer) Backspace(term string) {
	logging.Trace("search.backspace", map[string]interface{}{"term": term})
}

func (SearchTracer) WordBackspace(term string) {
	logging.Trace("search.word-backspace", map[string]interface{}{"term": term})
}

func (SearchTracer) Cursor(pos int) {
	logging.Trace("search.cursor", map[string]interface{}{"cursor": pos})
}

func (SearchTracer) CursorWord(pos int) {
	logging.Trace("search.cursor-word", map[string]interface{}{"cursor": pos})
}

func (CategoryTracer) Toggle(name, selected string) {
	logging.Trace("category.toggle", map[string]interface{}{"category": name, "selected": selected})
}

func (CategoryTracer) Focus(index int, name string) {
	logging.Trace("category.focus", map[string]interface{}{"index": index, "category": name})
}

func (PageTracer) Change(page, total int) {
	logging.Trace("page.change", map[string]interface{}{"page": page, "total": total})
}

func (EntryTracer) Cursor(cursor int, id string) {
	logging.Trace("entry.cursor", map[string]interface{}{"cursor": cursor, "id": id})
}

func (EntryTracer) Expand(id string, expanded bool) {
	logging.Trace("entry.expand", map[string]interface{}{"id": id, "expanded": expanded})
}
