package source

import (
	"context"

	"github.com/atomicstack/menu-browser/internal/catalog"
)

// Static serves a compiled-in list of entries.
type Static struct {
	entries []catalog.Entry
}

// NewStatic returns a static source. A nil slice selects the sample menu.
func NewStatic(entries []catalog.Entry) *Static {
	if entries == nil {
		entries = catalog.Sample()
	}
	return &Static{entries: catalog.CloneEntries(entries)}
}

func (s *Static) Name() string { return string(KindStatic) }

func (s *Static) Load(context.Context) ([]catalog.Entry, error) {
	return catalog.CloneEntries(s.entries), nil
}
