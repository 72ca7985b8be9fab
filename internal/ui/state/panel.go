package state

import (
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
	"github.com/charmbracelet/x/ansi"
)

// Button identifies the mouse button behind a click.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

const (
	// ItemGutter is reserved on each side of a label for the check mark and
	// the submenu arrow.
	ItemGutter = 2
	// MaxLabelWidth caps the label column; longer labels are truncated.
	MaxLabelWidth = 48
	minPanelWidth = 8
)

// Panel is one open menu box: the children of a submenu node laid out as
// rows.
type Panel struct {
	Items  []*Item
	Rect   geom.Rect
	Cursor int

	root      *Root
	parent    *Item
	node      *menu.Submenu
	depth     int
	direction geom.Direction
	zone      geom.SafeZone
	pending   *Item
	retryGen  int
	released  bool
	query     string
}

func newPanel(root *Root, parent *Item, node *menu.Submenu, depth int) *Panel {
	p := &Panel{
		root:   root,
		parent: parent,
		node:   node,
		depth:  depth,
		Cursor: -1,
	}
	children := node.Children()
	p.Items = make([]*Item, len(children))
	for i, child := range children {
		p.Items[i] = &Item{Node: child, panel: p, index: i}
	}
	p.Cursor = p.nextSelectable(-1, 1)
	return p
}

// Depth is zero for the top-level panel.
func (p *Panel) Depth() int { return p.depth }

// Parent returns the item this panel hangs off, or nil for the top level.
func (p *Panel) Parent() *Item { return p.parent }

// Node returns the submenu the panel shows.
func (p *Panel) Node() *menu.Submenu { return p.node }

// Direction returns the quadrant the panel grew into when last placed.
func (p *Panel) Direction() geom.Direction { return p.direction }

// SafeZone returns the zone installed by the last pointer leave.
func (p *Panel) SafeZone() geom.SafeZone { return p.zone }

// Released reports whether the panel has been closed.
func (p *Panel) Released() bool { return p.released }

// Size is the natural size of the panel including its frame.
func (p *Panel) Size() geom.Size {
	width := 0
	for _, item := range p.Items {
		w := ansi.StringWidth(item.Node.Label())
		if w > MaxLabelWidth {
			w = MaxLabelWidth
		}
		if w > width {
			width = w
		}
	}
	width += 2*ItemGutter + 2*FrameInset
	if width < minPanelWidth {
		width = minPanelWidth
	}
	return geom.Size{W: width, H: len(p.Items) + 2*FrameInset}
}

// ItemAt returns the row under pt, or nil when pt misses every row.
func (p *Panel) ItemAt(pt geom.Point) *Item {
	for _, item := range p.Items {
		if item.Contains(pt) {
			return item
		}
	}
	return nil
}

// Layout places the panel next to its anchor and then places the open
// child, if any.
func (p *Panel) Layout(viewport geom.Size) {
	if p.released {
		return
	}
	anchor, anchorDir := p.anchor()
	size := p.Size()
	pos, dir := geom.Place(anchor, anchorDir, size, viewport)
	p.Rect = geom.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
	p.direction = dir
	events.Panel.Placed(p.root.ID, p.depth, pos.X, pos.Y, size.W, size.H, dir.String())
	if child := p.openChild(); child != nil {
		child.Layout(viewport)
	}
}

func (p *Panel) anchor() (geom.Rect, geom.Direction) {
	if p.parent == nil {
		return p.root.AnchorRect(), p.root.Direction()
	}
	return p.parent.AnchorRect(), p.parent.Direction()
}

func (p *Panel) openChild() *Panel {
	for _, item := range p.Items {
		if item.child != nil {
			return item.child
		}
	}
	return nil
}

// TryOpenSubmenu opens item's submenu unless the pointer is inside the
// panel's live safe zone, in which case the open is retried once the zone
// expires.
func (p *Panel) TryOpenSubmenu(item *Item, pointer geom.Point) {
	if p.released || item == nil || item.panel != p {
		return
	}
	if _, ok := item.Submenu(); !ok {
		return
	}
	now := p.root.now()
	if !p.zone.Contains(pointer, now) {
		p.openSubmenu(item)
		return
	}
	if p.pending == item {
		return
	}
	p.pending = item
	p.retryGen++
	gen := p.retryGen
	wait := p.zone.Remaining(now)
	events.Panel.Defer(p.root.ID, item.Node.Label(), wait.Milliseconds())
	p.root.schedule(wait, func() { p.retry(gen) })
}

func (p *Panel) retry(gen int) {
	if p.released || gen != p.retryGen || p.pending == nil {
		return
	}
	item := p.pending
	p.pending = nil
	events.Panel.Retry(p.root.ID, item.Node.Label(), item.hovered)
	if item.hovered {
		p.openSubmenu(item)
	}
}

func (p *Panel) openSubmenu(item *Item) {
	p.pending = nil
	p.retryGen++
	p.CloseSubmenus(item)
	if item.child != nil {
		return
	}
	sub, ok := item.Submenu()
	if !ok {
		return
	}
	item.child = newPanel(p.root, item, sub, p.depth+1)
	item.child.Layout(p.root.viewport)
	events.Panel.Open(p.root.ID, item.Node.Label(), item.child.depth)
}

// PointerEnter marks item hovered and opens its submenu when it has one.
func (p *Panel) PointerEnter(item *Item, pointer geom.Point) {
	if p.released || item == nil || item.panel != p {
		return
	}
	item.hovered = true
	if item.Selectable() {
		p.Cursor = item.index
	}
	p.root.focus = p
	if _, ok := item.Submenu(); !ok {
		return
	}
	if item.child != nil {
		item.child.CloseSubmenus(nil)
		return
	}
	p.TryOpenSubmenu(item, pointer)
}

// PointerLeave clears the hover flag and, when item's submenu is open,
// installs a safe zone from pointer to the submenu's near edge.
func (p *Panel) PointerLeave(item *Item, pointer geom.Point) {
	if p.released || item == nil || item.panel != p {
		return
	}
	item.hovered = false
	child := item.child
	if child == nil {
		return
	}
	r := child.Rect
	edge := r.X
	if child.direction.West() {
		edge = r.X + r.W - 1
	}
	p.zone = geom.SafeZone{
		Triangle: geom.Triangle{
			P0: pointer,
			P1: geom.Point{X: edge, Y: r.Y},
			P2: geom.Point{X: edge, Y: r.Y + r.H - 1},
		},
		Created: p.root.now(),
		Timeout: p.root.opts.SafeZoneTimeout,
	}
	events.Panel.SafeZone(p.root.ID, p.depth, p.zone.Triangle.String())
}

// Probe is called for every pointer motion over item. It opens the submenu
// of a hovered item that has none open yet.
func (p *Panel) Probe(item *Item, pointer geom.Point) {
	if p.released || item == nil || !item.hovered || item.child != nil {
		return
	}
	if _, ok := item.Submenu(); !ok {
		return
	}
	p.TryOpenSubmenu(item, pointer)
}

// Click handles a left or right click on item. Enabled actions are invoked
// and close the whole menu.
func (p *Panel) Click(item *Item, button Button) {
	if p.released || item == nil || item.panel != p {
		return
	}
	if button != ButtonLeft && button != ButtonRight {
		return
	}
	p.CloseSubmenus(nil)
	if a, ok := item.Action(); ok && a.Enabled() {
		p.root.activate(a)
	}
}

// CloseSubmenus closes every open submenu of the panel except the one
// belonging to keep.
func (p *Panel) CloseSubmenus(keep *Item) {
	for _, item := range p.Items {
		if item != keep {
			item.closeSubmenu()
		}
	}
}

// Close closes this panel. Closing the top-level panel closes the menu.
func (p *Panel) Close() {
	p.closeWith(events.CloseReasonClose)
}

// closeWith closes this panel; reason is recorded when the whole menu goes.
func (p *Panel) closeWith(reason events.CloseReason) {
	if p.released {
		return
	}
	if p.parent == nil {
		p.root.CloseWith(reason)
		return
	}
	parent := p.parent.panel
	p.parent.closeSubmenu()
	p.root.focus = parent
}

func (p *Panel) release() {
	if p.released {
		return
	}
	for _, item := range p.Items {
		item.closeSubmenu()
		item.hovered = false
	}
	p.pending = nil
	p.retryGen++
	p.released = true
	events.Panel.Release(p.root.ID, p.depth)
}
