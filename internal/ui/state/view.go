package state

// PageSize is the number of entries shown per page.
const PageSize = 6

// View holds the transient browsing state. The visible slice is never stored;
// it is derived from the catalog on every read.
type View struct {
	SelectedCategory string
	SearchTerm       string
	SearchCursor     int
	CurrentPage      int
	Cursor           int
	CategoryFocus    int
	Expanded         map[string]struct{}
}

// NewView returns the initial state: no category, empty search, page 1.
func NewView() *View {
	return &View{
		CurrentPage: 1,
		Expanded:    make(map[string]struct{}),
	}
}

// ToggleCategory selects name, or clears the selection when name is already
// selected. It returns the resulting selection.
func (v *View) ToggleCategory(name string) string {
	if v.SelectedCategory == name {
		v.SelectedCategory = ""
	} else {
		v.SelectedCategory = name
	}
	v.resetPage()
	return v.SelectedCategory
}

// ClearCategory drops the selected category.
func (v *View) ClearCategory() bool {
	if v.SelectedCategory == "" {
		return false
	}
	v.SelectedCategory = ""
	v.resetPage()
	return true
}

// NextPage advances one page unless already on the last page.
func (v *View) NextPage(totalPages int) bool {
	page := v.page()
	if totalPages <= 0 || page >= totalPages {
		return false
	}
	v.CurrentPage = page + 1
	v.Cursor = 0
	return true
}

// PreviousPage moves back one page unless already on the first.
func (v *View) PreviousPage() bool {
	page := v.page()
	if page <= 1 {
		v.CurrentPage = 1
		return false
	}
	v.CurrentPage = page - 1
	v.Cursor = 0
	return true
}

func (v *View) page() int {
	if v.CurrentPage < 1 {
		return 1
	}
	return v.CurrentPage
}

func (v *View) resetPage() {
	v.CurrentPage = 1
	v.Cursor = 0
}

// FocusNextCategory moves the category focus right, wrapping at the end.
func (v *View) FocusNextCategory(n int) bool {
	if n <= 0 {
		v.CategoryFocus = 0
		return false
	}
	old := v.CategoryFocus
	v.CategoryFocus = (v.clampFocus(n) + 1) % n
	return old != v.CategoryFocus
}

// FocusPreviousCategory moves the category focus left, wrapping at the start.
func (v *View) FocusPreviousCategory(n int) bool {
	if n <= 0 {
		v.CategoryFocus = 0
		return false
	}
	old := v.CategoryFocus
	v.CategoryFocus = (v.clampFocus(n) - 1 + n) % n
	return old != v.CategoryFocus
}

func (v *View) clampFocus(n int) int {
	if v.CategoryFocus < 0 {
		return 0
	}
	if v.CategoryFocus >= n {
		return n - 1
	}
	return v.CategoryFocus
}
