package ui

import (
	"testing"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

const testDefinition = `
title: test
items:
  - path: Open
    value: open-it
  - path: Recent/a.txt
  - path: Recent/b.txt
  - path: Recent/c.txt
  - path: Recent/d.txt
  - separator: ""
  - path: Share/Email
    command: echo email
  - path: Quit
    disabled: true
`

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func mustDefinition(t *testing.T, data string) *menu.Definition {
	t.Helper()
	def, err := menu.ParseDefinition([]byte(data))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	return def
}

func newTestModel(t *testing.T, opts Options) (*Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	if opts.Definition == nil {
		opts.Definition = mustDefinition(t, testDefinition)
	}
	opts.Plain = true
	opts.Now = clock.Now
	return NewModel(opts), clock
}

func press(x, y int, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestNewModelWaitsForViewport(t *testing.T) {
	origin := geom.Point{X: 5, Y: 2}
	m, _ := newTestModel(t, Options{Origin: &origin})
	if m.Menu() != nil {
		t.Fatalf("expected no menu before the viewport is known")
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	root := m.Menu()
	if root == nil {
		t.Fatalf("expected menu to open once the viewport is known")
	}
	want := geom.Rect{X: 5, Y: 2, W: 12, H: 7}
	if root.Panel().Rect != want {
		t.Fatalf("expected top panel %v, got %v", want, root.Panel().Rect)
	}
}

func TestNewModelOpensImmediatelyWithFixedSize(t *testing.T) {
	origin := geom.Point{X: 1, Y: 1}
	m, _ := newTestModel(t, Options{Origin: &origin, Width: 40, Height: 12})
	if m.Menu() == nil {
		t.Fatalf("expected menu to open with a fixed viewport")
	}
	if !m.oneShot {
		t.Fatalf("expected origin to select one-shot mode")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m, _ := newTestModel(t, Options{Width: 50})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.width != 50 {
		t.Fatalf("expected fixed width to be kept, got %d", m.width)
	}
	if m.height != 30 {
		t.Fatalf("expected height to follow the terminal, got %d", m.height)
	}
}

func TestWindowSizeRelaysOpenMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(press(35, 2, tea.MouseButtonRight))
	if got := m.Menu().Panel().Rect; got.X != 35 {
		t.Fatalf("expected panel at the pointer, got %v", got)
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 24})
	if got := m.Menu().Panel().Rect; got.X+got.W > 40 {
		t.Fatalf("expected panel to fit the narrower viewport, got %v", got)
	}
}

func TestOpenMenuReportsInvalidDefinition(t *testing.T) {
	def := &menu.Definition{Items: []menu.DefinitionItem{
		{Path: "a"},
		{Path: "a/b"},
	}}
	m, _ := newTestModel(t, Options{Definition: def})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(press(5, 2, tea.MouseButtonRight))
	if m.Menu() != nil {
		t.Fatalf("expected invalid definition to keep the menu closed")
	}
	if m.errMsg == "" {
		t.Fatalf("expected build error to be shown")
	}
}

func TestSelectionEmptyBeforeActivation(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if _, ok := m.Selection(); ok {
		t.Fatalf("expected no selection")
	}
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	type other struct{}
	if _, cmd := m.Update(other{}); cmd != nil {
		t.Fatalf("expected no command for unknown message")
	}
}
