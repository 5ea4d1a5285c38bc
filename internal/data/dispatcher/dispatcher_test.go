package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/menu-browser/internal/backend"
	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/atomicstack/menu-browser/internal/state"
)

func TestHandleStoresLoadedCatalog(t *testing.T) {
	store := state.NewCatalogStore()
	if store.Loaded() || store.Catalog().Len() != 0 {
		t.Fatalf("expected empty unloaded store")
	}
	d := New(store)
	res := d.Handle(backend.Event{Source: "static", Catalog: catalog.New(catalog.Sample())})
	if !res.CatalogUpdated || res.Err != nil {
		t.Fatalf("unexpected result %#v", res)
	}
	if !store.Loaded() || store.Source() != "static" || store.Catalog().Len() != 5 {
		t.Fatalf("expected sample catalog in store")
	}
}

func TestHandleFailureLeavesEmptyCatalog(t *testing.T) {
	store := state.NewCatalogStore()
	store.SetCatalog("static", catalog.New(catalog.Sample()))
	d := New(store)
	boom := errors.New("boom")
	res := d.Handle(backend.Event{Source: "dynamodb:menu", Err: boom, Catalog: catalog.New(catalog.Sample())})
	if !errors.Is(res.Err, boom) {
		t.Fatalf("expected error in result, got %v", res.Err)
	}
	if store.Catalog().Len() != 0 {
		t.Fatalf("expected store to degrade to an empty catalog")
	}
	if !store.Loaded() {
		t.Fatalf("expected failed load to count as loaded")
	}
}
