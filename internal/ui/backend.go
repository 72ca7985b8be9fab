package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded definition. While a menu is open the
// new definition waits for the next open.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		events.Definition.Error(evt.Path, evt.Err)
		m.errMsg = fmt.Sprintf("menu reload failed: %v", evt.Err)
		return
	}
	if evt.Definition == nil {
		return
	}
	events.Definition.Reload(evt.Path, len(evt.Definition.Items))
	m.errMsg = ""
	if m.Menu() != nil {
		m.pendingDef = evt.Definition
		return
	}
	m.def = evt.Definition
	m.infoMsg = "menu reloaded"
}
