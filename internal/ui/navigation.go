package ui

import (
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Open     key.Binding
	Back     key.Binding
	Activate key.Binding
	Close    key.Binding
	Erase    key.Binding
	Show     key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous item")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next item")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first item")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last item")),
		Open:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "open submenu")),
		Back:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "close submenu")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Erase:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "edit search")),
		Show:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open menu")),
		Dismiss:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

var keys = defaultKeyMap()

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, keys.Quit) {
		m.quitting = true
		return tea.Quit
	}
	root := m.Menu()
	if root == nil {
		return m.handleBackdropKey(keyMsg)
	}
	focus := root.Focus()
	if focus == nil {
		return nil
	}
	switch {
	case key.Matches(keyMsg, keys.Up):
		focus.MoveCursor(-1)
	case key.Matches(keyMsg, keys.Down):
		focus.MoveCursor(1)
	case key.Matches(keyMsg, keys.Home):
		focus.MoveCursorHome()
	case key.Matches(keyMsg, keys.End):
		focus.MoveCursorEnd()
	case key.Matches(keyMsg, keys.Open):
		focus.KeyOpen()
	case key.Matches(keyMsg, keys.Activate):
		focus.KeyActivate()
		return m.afterClose()
	case key.Matches(keyMsg, keys.Back):
		if focus.Depth() > 0 {
			focus.KeyBack()
		}
	case key.Matches(keyMsg, keys.Close):
		focus.KeyBack()
		return m.afterClose()
	case key.Matches(keyMsg, keys.Erase):
		focus.Backspace()
	case keyMsg.Type == tea.KeyRunes && !keyMsg.Alt:
		focus.Type(string(keyMsg.Runes))
	}
	return nil
}

func (m *Model) handleBackdropKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Dismiss):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, keys.Show):
		m.openMenu(geom.Point{X: m.width / 2, Y: m.height / 2})
	}
	return nil
}
