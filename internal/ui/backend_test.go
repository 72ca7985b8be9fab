package ui

import (
	"testing"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

const reloadedDefinition = `
items:
  - path: Reloaded
`

func TestReloadWhileClosedReplacesDefinition(t *testing.T) {
	model, _ := newTestModel(t, Options{})
	h := NewHarness(model)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	def := mustDefinition(t, reloadedDefinition)
	h.Send(backendEventMsg{event: backend.Event{Path: "menu.yaml", Definition: def}})
	if h.Model().infoMsg != "menu reloaded" {
		t.Fatalf("expected reload notice, got %q", h.Model().infoMsg)
	}
	h.Send(press(5, 2, tea.MouseButtonRight))
	items := h.Model().Menu().Panel().Items
	if len(items) != 1 || items[0].Node.Label() != "Reloaded" {
		t.Fatalf("expected reloaded items, got %d", len(items))
	}
}

func TestReloadWhileOpenWaitsForNextOpen(t *testing.T) {
	h, _ := openTestMenu(t, Options{})
	def := mustDefinition(t, reloadedDefinition)
	h.Send(backendEventMsg{event: backend.Event{Path: "menu.yaml", Definition: def}})
	if got := len(h.Model().Menu().Panel().Items); got != 5 {
		t.Fatalf("expected open menu to keep its items, got %d", got)
	}
	h.Send(press(50, 10, tea.MouseButtonRight))
	items := h.Model().Menu().Panel().Items
	if len(items) != 1 || items[0].Node.Label() != "Reloaded" {
		t.Fatalf("expected reloaded definition on reopen")
	}
}

func TestBackendDoneClearsWatcher(t *testing.T) {
	model, _ := newTestModel(t, Options{})
	model.backend = &backend.Watcher{}
	model.Update(backendDoneMsg{})
	if model.backend != nil {
		t.Fatalf("expected watcher to be cleared")
	}
	if model.Init() != nil {
		t.Fatalf("expected no backend wait without a watcher")
	}
}
