package ui

import (
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// retryMsg carries a deferred submenu open back onto the update loop.
type retryMsg struct {
	menuID string
	fire   func()
}

func (m *Model) schedule(d time.Duration, fire func()) {
	id := ""
	if m.root != nil {
		id = m.root.ID
	}
	m.queued = append(m.queued, m.tick(d, func(time.Time) tea.Msg {
		return retryMsg{menuID: id, fire: fire}
	}))
}

func (m *Model) handleRetryMsg(msg tea.Msg) tea.Cmd {
	retry, ok := msg.(retryMsg)
	if !ok || retry.fire == nil {
		return nil
	}
	if m.root == nil || m.root.Closed() || m.root.ID != retry.menuID {
		return nil
	}
	retry.fire()
	return nil
}

func (m *Model) handleActionDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(command.DoneMsg)
	if !ok {
		return nil
	}
	select {
	case sel := <-m.selections:
		m.selection = &sel
	default:
	}
	events.Action.Success(done.Path)
	m.root = nil
	m.quitting = true
	return tea.Quit
}
