package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/backend"
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/logging"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/atomicstack/tmux-context-menu/internal/theme"
	"github.com/atomicstack/tmux-context-menu/internal/ui/command"
	uistate "github.com/atomicstack/tmux-context-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const backdropHint = "right-click (or ctrl+click) to open the menu, q to quit"

type msgHandler func(tea.Msg) tea.Cmd

type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Definition *menu.Definition
	MenuPath   string
	Width      int
	Height     int
	// Origin opens the menu at this point as soon as the viewport is known.
	// The program then exits when the menu closes.
	Origin          *geom.Point
	SafeZoneTimeout time.Duration
	HoldThreshold   time.Duration
	Plain           bool
	Watcher         *backend.Watcher
	Now             func() time.Time
}

// Model implements the Bubble Tea model for the context menu.
type Model struct {
	def        *menu.Definition
	pendingDef *menu.Definition
	menuPath   string
	root       *uistate.Root

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	openAt  *geom.Point
	oneShot bool

	safeZoneTimeout time.Duration
	holdThreshold   time.Duration
	now             func() time.Time
	tick            tickFunc

	styles     *theme.Styles
	bus        *command.Bus
	backend    *backend.Watcher
	queued     []tea.Cmd
	selections chan menu.Selection
	selection  *menu.Selection
	quitting   bool
	errMsg     string
	infoMsg    string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state from the loaded definition.
func NewModel(opts Options) *Model {
	m := &Model{
		def:             opts.Definition,
		menuPath:        opts.MenuPath,
		safeZoneTimeout: opts.SafeZoneTimeout,
		holdThreshold:   opts.HoldThreshold,
		now:             opts.Now,
		tick:            tea.Tick,
		styles:          theme.Select(opts.Plain),
		bus:             command.New(),
		backend:         opts.Watcher,
		selections:      make(chan menu.Selection, 1),
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if opts.Origin != nil {
		origin := *opts.Origin
		m.openAt = &origin
		m.oneShot = true
	}
	m.registerHandlers()
	if m.openAt != nil && m.width > 0 && m.height > 0 {
		m.openPending()
	}
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
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
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(retryMsg{}):          m.handleRetryMsg,
		reflect.TypeOf(command.DoneMsg{}):   m.handleActionDoneMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

// finishUpdate folds in commands queued by menu callbacks during the update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.queued) > 0 {
		cmds = append(cmds, m.queued...)
		m.queued = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Menu returns the open menu, or nil.
func (m *Model) Menu() *uistate.Root {
	if m.root == nil || m.root.Closed() {
		return nil
	}
	return m.root
}

// Selection returns the activated definition item once the program is done.
func (m *Model) Selection() (menu.Selection, bool) {
	if m.selection == nil {
		return menu.Selection{}, false
	}
	return *m.selection, true
}

func (m *Model) viewport() geom.Size {
	return geom.Size{W: m.width, H: m.height}
}

func (m *Model) openPending() {
	if m.openAt == nil {
		return
	}
	origin := *m.openAt
	m.openAt = nil
	m.openMenu(origin)
}

func (m *Model) openMenu(origin geom.Point) {
	if m.root != nil && !m.root.Closed() {
		m.root.CloseWith(events.CloseReasonReopen)
	}
	m.root = nil
	if m.pendingDef != nil {
		m.def = m.pendingDef
		m.pendingDef = nil
	}
	if m.def == nil {
		return
	}
	root, err := uistate.Open(m.def.Entries(m.recordSelection), origin, m.viewport(), uistate.Options{
		SafeZoneTimeout: m.safeZoneTimeout,
		HoldThreshold:   m.holdThreshold,
		Scheduler:       uistate.SchedulerFunc(m.schedule),
		Now:             m.now,
		Invoke:          m.queueAction,
	})
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.infoMsg = ""
	m.root = root
}

// afterClose decides what happens once the menu tore itself down.
func (m *Model) afterClose() tea.Cmd {
	if m.root == nil || !m.root.Closed() {
		return nil
	}
	if m.root.Activated() != nil {
		// the action's DoneMsg ends the program
		return nil
	}
	m.root = nil
	if m.oneShot {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) recordSelection(sel menu.Selection) {
	select {
	case m.selections <- sel:
	default:
	}
}

func (m *Model) queueAction(a *menu.Action) {
	id := ""
	if m.root != nil {
		id = m.root.ID
	}
	m.queued = append(m.queued, m.bus.Execute(command.Request{ID: id, Label: a.Name, Action: a}))
}
