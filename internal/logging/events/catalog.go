package events

import "github.com/atomicstack/menu-browser/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) LoadStart(source string) {
	logging.Trace("catalog.load.start", map[string]interface{}{"source": source})
}

func (CatalogTracer) Loaded(source string, entries, categories int) {
	logging.Trace("catalog.load.done", map[string]interface{}{
		"source":     source,
		"entries":    entries,
		"categories": categories,
	})
}

func (CatalogTracer) LoadFailed(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.load.error", map[string]interface{}{"source": source, "error": err.Error()})
}

// MultipleFeatured notes a catalog that flags more than one entry; only the
// first is shown.
func (CatalogTracer) MultipleFeatured(source string, ids []string) {
	logging.Trace("catalog.featured.multiple", map[string]interface{}{"source": source, "ids": ids})
}
