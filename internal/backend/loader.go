package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/atomicstack/menu-browser/internal/catalog/source"
	"github.com/atomicstack/menu-browser/internal/logging/events"
)

// Event conveys the outcome of a catalog load.
type Event struct {
	Source  string
	Catalog *catalog.Catalog
	Report  catalog.Report
	Err     error
}

// Loader reads a source once in the background and publishes a single event.
// There is no retry: a failed load is reported and the loader is done.
type Loader struct {
	src source.Source

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// Start begins loading src. The returned loader's Events channel yields one
// event and is then closed.
func Start(ctx context.Context, src source.Source) *Loader {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loader{
		src:    src,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 1),
	}
	l.wg.Add(1)
	go l.run()
	go func() {
		l.wg.Wait()
		close(l.events)
	}()
	return l
}

// Events returns the channel carrying the load result.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Stop cancels an in-flight load.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the load goroutine has exited.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()
	evt := LoadNow(l.ctx, l.src)
	select {
	case <-l.ctx.Done():
	case l.events <- evt:
	}
}

// LoadNow reads src synchronously, validates the entries, and builds the
// catalog. On any failure the event carries an empty catalog and the error.
func LoadNow(ctx context.Context, src source.Source) Event {
	name := src.Name()
	events.Catalog.LoadStart(name)
	evt := Event{Source: name, Catalog: catalog.Empty()}

	entries, err := src.Load(ctx)
	if err != nil {
		evt.Err = fmt.Errorf("load catalog from %s: %w", name, err)
		events.Catalog.LoadFailed(name, evt.Err)
		return evt
	}
	report, err := catalog.Validate(entries)
	evt.Report = report
	if err != nil {
		evt.Err = fmt.Errorf("validate catalog from %s: %w", name, err)
		events.Catalog.LoadFailed(name, evt.Err)
		return evt
	}
	if report.MultipleFeatured() {
		events.Catalog.MultipleFeatured(name, report.Featured)
	}
	evt.Catalog = catalog.New(entries)
	events.Catalog.Loaded(name, evt.Catalog.Len(), len(evt.Catalog.CategoryNames()))
	return evt
}
