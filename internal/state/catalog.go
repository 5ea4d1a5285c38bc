package state

import "github.com/atomicstack/menu-browser/internal/catalog"

type CatalogStore interface {
	Catalog() *catalog.Catalog
	SetCatalog(source string, c *catalog.Catalog)
	Source() string
	Loaded() bool
}

type catalogStore struct {
	catalog *catalog.Catalog
	source  string
	loaded  bool
}

// NewCatalogStore returns a store holding an empty catalog until one is set.
func NewCatalogStore() CatalogStore {
	return &catalogStore{catalog: catalog.Empty()}
}

func (s *catalogStore) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *catalogStore) SetCatalog(source string, c *catalog.Catalog) {
	if c == nil {
		c = catalog.Empty()
	}
	s.catalog = c
	s.source = source
	s.loaded = true
}

func (s *catalogStore) Source() string {
	return s.source
}

func (s *catalogStore) Loaded() bool {
	return s.loaded
}
