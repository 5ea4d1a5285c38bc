package state

import (
	"fmt"

	"github.com/atomicstack/menu-browser/internal/catalog"
)

// Page is the derived result of applying a View to a catalog.
type Page struct {
	Items        []catalog.Entry
	Total        int
	TotalPages   int
	CurrentPage  int
	HasPrevious  bool
	HasNext      bool
	ShowFeatured bool
	Featured     catalog.Entry
}

// Label renders the pagination position, e.g. "Page 2 of 3".
func (p Page) Label() string {
	page := p.CurrentPage
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("Page %d of %d", page, p.TotalPages)
}

// Derive computes the visible page. A selected category takes precedence over
// the search term; the search is not applied inside a category.
func Derive(cat *catalog.Catalog, st View) Page {
	var src []catalog.Entry
	if st.SelectedCategory != "" {
		if c, ok := cat.Category(st.SelectedCategory); ok {
			src = c.Items
		}
	} else {
		src = FilterEntries(cat.ListAll(), st.SearchTerm)
	}

	page := st.CurrentPage
	if page < 1 {
		page = 1
	}
	total := len(src)
	totalPages := (total + PageSize - 1) / PageSize

	p := Page{
		Items:       sliceWindow(src, page),
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
	if st.SearchTerm == "" {
		if featured, ok := cat.Featured(); ok {
			p.ShowFeatured = true
			p.Featured = featured
		}
	}
	return p
}

func sliceWindow(src []catalog.Entry, page int) []catalog.Entry {
	start := (page - 1) * PageSize
	if start >= len(src) {
		return []catalog.Entry{}
	}
	end := start + PageSize
	if end > len(src) {
		end = len(src)
	}
	return catalog.CloneEntries(src[start:end])
}
