package state

import "github.com/atomicstack/menu-browser/internal/catalog"

// IsExpanded reports whether the description for id is shown in full.
func (v *View) IsExpanded(id string) bool {
	if v.Expanded == nil {
		return false
	}
	_, ok := v.Expanded[id]
	return ok
}

// ToggleExpanded flips the expanded state for id and returns the new state.
func (v *View) ToggleExpanded(id string) bool {
	if v.Expanded == nil {
		v.Expanded = make(map[string]struct{})
	}
	if _, ok := v.Expanded[id]; ok {
		delete(v.Expanded, id)
		return false
	}
	v.Expanded[id] = struct{}{}
	return true
}

// PruneExpanded drops expanded ids that are no longer visible.
func (v *View) PruneExpanded(visible []catalog.Entry) {
	if len(v.Expanded) == 0 {
		return
	}
	keep := make(map[string]struct{}, len(visible))
	for _, entry := range visible {
		keep[entry.ID] = struct{}{}
	}
	for id := range v.Expanded {
		if _, ok := keep[id]; !ok {
			delete(v.Expanded, id)
		}
	}
}
