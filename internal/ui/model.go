package ui

import (
	"reflect"

	"github.com/atomicstack/menu-browser/internal/backend"
	"github.com/atomicstack/menu-browser/internal/data/dispatcher"
	"github.com/atomicstack/menu-browser/internal/state"
	"github.com/atomicstack/menu-browser/internal/theme"
	uistate "github.com/atomicstack/menu-browser/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const pageTitle = "Our Delightful Menu"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the menu browser.
type Model struct {
	view       *uistate.View
	catalogs   state.CatalogStore
	dispatcher *dispatcher.Dispatcher
	loader     *backend.Loader
	loading    bool
	errMsg     string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	keys              keyMap
	help              help.Model
	searchCursor      cursor.Model
	searchCursorDirty bool
	searchFocused     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI over store. When loader is non-nil the model shows a
// loading state until the loader publishes its result.
func NewModel(store state.CatalogStore, width, height int, showFooter bool, loader *backend.Loader) *Model {
	if store == nil {
		store = state.NewCatalogStore()
	}
	m := &Model{
		view:       uistate.NewView(),
		catalogs:   store,
		dispatcher: dispatcher.New(store),
		loader:     loader,
		loading:    loader != nil,
		showFooter: showFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Search != nil {
		c.TextStyle = styles.Search.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		cmds = append(cmds, waitForLoadEvent(m.loader))
	}
	m.searchFocused = true
	if cmd := m.searchCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(loadEventMsg{}):      m.handleLoadEventMsg,
		reflect.TypeOf(loadDoneMsg{}):       m.handleLoadDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.searchCursorDirty {
		m.searchCursorDirty = false
		m.searchCursor.Blink = false
		if m.searchFocused {
			if cmd := m.searchCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// derive computes the page currently on screen.
func (m *Model) derive() uistate.Page {
	return uistate.Derive(m.catalogs.Catalog(), *m.view)
}

// refresh re-derives the page and keeps the cursor and expanded set inside it.
func (m *Model) refresh() uistate.Page {
	page := m.derive()
	m.view.ClampCursor(len(page.Items))
	m.view.PruneExpanded(page.Items)
	return page
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}
