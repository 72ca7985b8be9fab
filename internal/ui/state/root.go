package state

import (
	"time"

	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/google/uuid"
)

// DefaultHoldThreshold separates a quick open click from a press-and-hold.
const DefaultHoldThreshold = 300 * time.Millisecond

// Scheduler runs fire once after d on the goroutine that owns the menu.
type Scheduler interface {
	After(d time.Duration, fire func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fire func())

func (f SchedulerFunc) After(d time.Duration, fire func()) { f(d, fire) }

// Options configures a menu instance.
type Options struct {
	SafeZoneTimeout time.Duration
	HoldThreshold   time.Duration
	Scheduler       Scheduler
	Now             func() time.Time
	// Invoke runs an activated action. Nil calls Action.Invoke directly.
	Invoke func(*menu.Action)
}

func (o Options) withDefaults() Options {
	if o.SafeZoneTimeout <= 0 {
		o.SafeZoneTimeout = geom.DefaultSafeZoneTimeout
	}
	if o.HoldThreshold <= 0 {
		o.HoldThreshold = DefaultHoldThreshold
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Scheduler == nil {
		o.Scheduler = SchedulerFunc(func(d time.Duration, fire func()) {})
	}
	return o
}

// Root coordinates one open context menu: the tree, the top-level panel,
// the click point it was opened at and the open-click debounce.
type Root struct {
	ID string

	opts              Options
	tree              *menu.Submenu
	panel             *Panel
	focus             *Panel
	hover             *Item
	origin            geom.Point
	viewport          geom.Size
	openedAt          time.Time
	openClickConsumed bool
	closed            bool
	closeReason       events.CloseReason
	activated         *menu.Action
}

// Open builds the menu tree from entries and opens its top-level panel at
// origin. Tree construction errors abort the open.
func Open(entries []menu.Entry, origin geom.Point, viewport geom.Size, opts Options) (*Root, error) {
	tree, err := menu.Build(entries)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	r := &Root{
		ID:       uuid.NewString(),
		opts:     opts,
		tree:     tree,
		origin:   origin,
		viewport: viewport,
		openedAt: opts.Now(),
	}
	r.panel = newPanel(r, nil, tree, 0)
	r.focus = r.panel
	events.Menu.Open(r.ID, origin.X, origin.Y, menu.CountLeaves(tree))
	r.panel.Layout(viewport)
	return r, nil
}

// Tree returns the built menu tree.
func (r *Root) Tree() *menu.Submenu { return r.tree }

// Panel returns the top-level panel.
func (r *Root) Panel() *Panel { return r.panel }

// Origin returns the point the menu was opened at.
func (r *Root) Origin() geom.Point { return r.origin }

// Viewport returns the size the panels were last laid out against.
func (r *Root) Viewport() geom.Size { return r.viewport }

// Closed reports whether the menu has been torn down.
func (r *Root) Closed() bool { return r == nil || r.closed }

// CloseReason reports why the menu closed, or "" while it is open.
func (r *Root) CloseReason() events.CloseReason { return r.closeReason }

// Activated returns the action that closed the menu, if any.
func (r *Root) Activated() *menu.Action { return r.activated }

// Direction is the growth direction seeded into the top-level panel.
func (r *Root) Direction() geom.Direction { return geom.SE }

// AnchorRect is the zero-size rectangle at the click point.
func (r *Root) AnchorRect() geom.Rect {
	return geom.Rect{X: r.origin.X, Y: r.origin.Y}
}

// Panels returns the open panels from the top level down to the deepest
// open submenu.
func (r *Root) Panels() []*Panel {
	if r.Closed() {
		return nil
	}
	panels := make([]*Panel, 0, 4)
	for p := r.panel; p != nil; p = p.openChild() {
		panels = append(panels, p)
	}
	return panels
}

// Focus returns the panel keyboard input applies to.
func (r *Root) Focus() *Panel {
	if r.Closed() {
		return nil
	}
	if r.focus == nil || r.focus.released {
		r.focus = r.panel
	}
	return r.focus
}

// Hit returns the topmost panel under p and the item at p within it. The
// item is nil when p falls on the panel frame.
func (r *Root) Hit(p geom.Point) (*Panel, *Item) {
	panels := r.Panels()
	for i := len(panels) - 1; i >= 0; i-- {
		panel := panels[i]
		if !panel.Rect.Contains(p) {
			continue
		}
		return panel, panel.ItemAt(p)
	}
	return nil, nil
}

// Hovered returns the item currently under the pointer.
func (r *Root) Hovered() *Item { return r.hover }

// PointerMove routes a pointer motion to the panels: leaving the previous
// item, entering the new one, or probing the item still under the pointer.
func (r *Root) PointerMove(pt geom.Point) {
	if r.Closed() {
		return
	}
	_, item := r.Hit(pt)
	if item != nil && item == r.hover {
		item.panel.Probe(item, pt)
		return
	}
	if prev := r.hover; prev != nil {
		r.hover = nil
		prev.panel.PointerLeave(prev, pt)
	}
	if item != nil {
		r.hover = item
		item.panel.PointerEnter(item, pt)
	}
}

// Click routes a button release at pt. Releases outside every panel go to
// DismissClick. A release on a panel frame is ignored, except for the
// release of the opening press, which is treated as a dismiss click so a
// press held on the click point closes the menu. It reports whether the
// menu closed.
func (r *Root) Click(pt geom.Point, button Button) bool {
	if r.Closed() {
		return false
	}
	panel, item := r.Hit(pt)
	switch {
	case panel == nil:
		return r.DismissClick()
	case item == nil:
		if !r.openClickConsumed {
			return r.DismissClick()
		}
		return false
	}
	r.openClickConsumed = true
	panel.Click(item, button)
	return r.Closed()
}

// Layout places every open panel against the viewport.
func (r *Root) Layout(viewport geom.Size) {
	if r.Closed() {
		return
	}
	r.viewport = viewport
	r.panel.Layout(viewport)
}

// DismissClick handles a click that landed outside every panel. The first
// such release after opening is swallowed unless the button was held for at
// least the hold threshold. It reports whether the menu closed.
func (r *Root) DismissClick() bool {
	if r.Closed() {
		return false
	}
	if !r.openClickConsumed {
		r.openClickConsumed = true
		elapsed := r.opts.Now().Sub(r.openedAt)
		if elapsed < r.opts.HoldThreshold {
			events.Menu.SwallowOpenClick(r.ID, elapsed.Milliseconds())
			return false
		}
	}
	r.close(events.CloseReasonDismiss)
	return true
}

// Close tears down every panel.
func (r *Root) Close() {
	r.close(events.CloseReasonClose)
}

// CloseWith tears down every panel, recording why in the trace log.
func (r *Root) CloseWith(reason events.CloseReason) {
	r.close(reason)
}

func (r *Root) close(reason events.CloseReason) {
	if r.Closed() {
		return
	}
	r.closed = true
	r.closeReason = reason
	r.panel.release()
	r.focus = nil
	r.hover = nil
	events.Menu.Close(r.ID, reason)
}

func (r *Root) activate(a *menu.Action) {
	r.activated = a
	events.Action.Invoke(r.ID, a.Path)
	if r.opts.Invoke != nil {
		r.opts.Invoke(a)
	} else {
		a.Invoke()
	}
	r.close(events.CloseReasonActivate)
}

func (r *Root) now() time.Time { return r.opts.Now() }

func (r *Root) schedule(d time.Duration, fire func()) {
	r.opts.Scheduler.After(d, fire)
}
