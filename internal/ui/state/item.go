package state

import (
	"github.com/atomicstack/tmux-context-menu/internal/geom"
	"github.com/atomicstack/tmux-context-menu/internal/menu"
)

// FrameInset is the width of the border drawn around every panel.
const FrameInset = 1

// Item is one row of a panel.
type Item struct {
	Node menu.Node

	panel   *Panel
	index   int
	child   *Panel
	hovered bool
}

// Index returns the row index within the panel.
func (i *Item) Index() int { return i.index }

// Panel returns the panel the item belongs to.
func (i *Item) Panel() *Panel { return i.panel }

// Child returns the open submenu panel, or nil.
func (i *Item) Child() *Panel { return i.child }

// Hovered reports whether the pointer is over the item.
func (i *Item) Hovered() bool { return i.hovered }

// Submenu returns the item's submenu node when it has one.
func (i *Item) Submenu() (*menu.Submenu, bool) {
	sub, ok := i.Node.(*menu.Submenu)
	return sub, ok
}

// Action returns the item's action node when it has one.
func (i *Item) Action() (*menu.Action, bool) {
	a, ok := i.Node.(*menu.Action)
	return a, ok
}

// IsSeparator reports whether the item is a separator row.
func (i *Item) IsSeparator() bool {
	_, ok := i.Node.(*menu.Separator)
	return ok
}

// Selectable reports whether keyboard navigation may land on the item.
func (i *Item) Selectable() bool {
	return !i.IsSeparator()
}

// Rect returns the item's row inside the panel frame.
func (i *Item) Rect() geom.Rect {
	r := i.panel.Rect
	return geom.Rect{
		X: r.X + FrameInset,
		Y: r.Y + FrameInset + i.index,
		W: r.W - 2*FrameInset,
		H: 1,
	}
}

// Contains reports whether p is on the item's row. It has no side effects.
func (i *Item) Contains(p geom.Point) bool {
	return i.Rect().Contains(p)
}

// AnchorRect is the rectangle a submenu is placed against: the full panel
// width, extended by the frame so the submenu's first (or last) row lines up
// with this item.
func (i *Item) AnchorRect() geom.Rect {
	r := i.panel.Rect
	return geom.Rect{
		X: r.X,
		Y: r.Y + i.index,
		W: r.W,
		H: 1 + 2*FrameInset,
	}
}

// Direction returns the growth direction of the item's panel.
func (i *Item) Direction() geom.Direction { return i.panel.direction }

func (i *Item) closeSubmenu() {
	if i.child == nil {
		return
	}
	i.child.release()
	i.child = nil
}
