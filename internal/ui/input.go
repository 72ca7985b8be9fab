package ui

import (
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	uistate "github.com/atomicstack/tmux-context-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Activation records how a mouse press asked for a menu.
type Activation int

const (
	ActivationNone Activation = iota
	// ActivationSecondary is a right-button press.
	ActivationSecondary
	// ActivationModified is ctrl plus the primary button, for single-button
	// pointers.
	ActivationModified
)

// ActivationFor reports whether ev should open a context menu.
func ActivationFor(ev tea.MouseMsg) Activation {
	if ev.Action != tea.MouseActionPress {
		return ActivationNone
	}
	switch {
	case ev.Button == tea.MouseButtonRight:
		return ActivationSecondary
	case ev.Button == tea.MouseButtonLeft && ev.Ctrl:
		return ActivationModified
	}
	return ActivationNone
}

func buttonFor(b tea.MouseButton) uistate.Button {
	switch b {
	case tea.MouseButtonRight:
		return uistate.ButtonRight
	case tea.MouseButtonMiddle:
		return uistate.ButtonMiddle
	default:
		return uistate.ButtonLeft
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	pt := geom.Point{X: ev.X, Y: ev.Y}
	switch ev.Action {
	case tea.MouseActionMotion:
		if root := m.Menu(); root != nil {
			root.PointerMove(pt)
		}
	case tea.MouseActionPress:
		if ActivationFor(ev) == ActivationNone {
			return nil
		}
		if root := m.Menu(); root != nil {
			if panel, _ := root.Hit(pt); panel != nil {
				// presses over an open panel act on release
				return nil
			}
		}
		m.openMenu(pt)
	case tea.MouseActionRelease:
		root := m.Menu()
		if root == nil {
			return nil
		}
		root.Click(pt, buttonFor(ev.Button))
		return m.afterClose()
	}
	return nil
}
