package command

import (
	"fmt"

	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID     string
	Label  string
	Action *menu.Action
}

// DoneMsg reports that an action's capability has run.
type DoneMsg struct {
	ID   string
	Path string
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Action == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		req.Action.Invoke()
		msg := DoneMsg{ID: req.ID, Path: req.Action.Path}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
