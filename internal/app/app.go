package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/menu-browser/internal/backend"
	"github.com/atomicstack/menu-browser/internal/catalog/source"
	"github.com/atomicstack/menu-browser/internal/data/dispatcher"
	"github.com/atomicstack/menu-browser/internal/logging"
	"github.com/atomicstack/menu-browser/internal/state"
	"github.com/atomicstack/menu-browser/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Source     source.Config
	Width      int
	Height     int
	ShowFooter bool
}

type closer interface {
	Close()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, cleanup, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel builds the source and the UI model. The static source is read
// before the program starts; every other source loads in the background. The
// returned cleanup stops the loader and releases source connections.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, func(), error) {
	src, err := source.New(ctx, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog source: %w", err)
	}
	store := state.NewCatalogStore()
	var loader *backend.Loader
	if source.IsSynchronous(src) {
		if res := dispatcher.New(store).Handle(backend.LoadNow(ctx, src)); res.Err != nil {
			logging.Error(res.Err)
		}
	} else {
		loader = backend.Start(ctx, src)
	}
	cleanup := func() {
		if loader != nil {
			loader.Stop()
			loader.Wait()
		}
		if c, ok := src.(closer); ok {
			c.Close()
		}
	}
	return ui.NewModel(store, cfg.Width, cfg.Height, cfg.ShowFooter, loader), cleanup, nil
}
