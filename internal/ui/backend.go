package ui

import (
	"github.com/atomicstack/menu-browser/internal/backend"
	"github.com/atomicstack/menu-browser/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForLoadEvent(l *backend.Loader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return loadDoneMsg{}
		}
		return loadEventMsg{event: evt}
	}
}

type loadEventMsg struct {
	event backend.Event
}

type loadDoneMsg struct{}

func (m *Model) handleLoadEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(loadEventMsg)
	if !ok {
		return nil
	}
	m.applyLoadEvent(eventMsg.event)
	if m.loader != nil {
		return waitForLoadEvent(m.loader)
	}
	return nil
}

func (m *Model) handleLoadDoneMsg(msg tea.Msg) tea.Cmd {
	m.loader = nil
	m.loading = false
	return nil
}

func (m *Model) applyLoadEvent(evt backend.Event) {
	m.loading = false
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		logging.Error(res.Err)
	} else {
		m.errMsg = ""
	}
	if n := len(m.catalogs.Catalog().CategoryNames()); m.view.CategoryFocus >= n {
		m.view.CategoryFocus = 0
	}
	if m.view.SelectedCategory != "" {
		if _, ok := m.catalogs.Catalog().Category(m.view.SelectedCategory); !ok {
			m.view.ClearCategory()
		}
	}
	m.refresh()
}
