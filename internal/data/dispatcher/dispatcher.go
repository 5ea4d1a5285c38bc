package dispatcher

import (
	"github.com/atomicstack/menu-browser/internal/backend"
	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/atomicstack/menu-browser/internal/state"
)

type Result struct {
	CatalogUpdated bool
	Err            error
}

type Dispatcher struct {
	catalogs state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalogs: c}
}

// Handle applies a load event to the store. A failed load leaves the store
// holding an empty catalog so the view stays usable.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	res := Result{CatalogUpdated: true, Err: evt.Err}
	if evt.Err != nil || evt.Catalog == nil {
		d.catalogs.SetCatalog(evt.Source, catalog.Empty())
		return res
	}
	d.catalogs.SetCatalog(evt.Source, evt.Catalog)
	return res
}
