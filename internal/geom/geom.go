// Package geom holds the cell-space geometry used to position menu panels and
// to decide whether the pointer is travelling towards an open submenu.
package geom

import (
	"fmt"
	"time"
)

// Point is a cell coordinate with the origin in the top-left corner.
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Triangle is the safe zone spanned by the pointer and the near edge of an
// open submenu.
type Triangle struct {
	P0, P1, P2 Point
}

// ContainsPoint reports whether p lies inside the triangle or on its edges.
// Degenerate triangles contain nothing.
func (t Triangle) ContainsPoint(p Point) bool {
	dX := p.X - t.P2.X
	dY := p.Y - t.P2.Y
	dX21 := t.P2.X - t.P1.X
	dY12 := t.P1.Y - t.P2.Y
	d := dY12*(t.P0.X-t.P2.X) + dX21*(t.P0.Y-t.P2.Y)
	if d == 0 {
		return false
	}
	s := dY12*dX + dX21*dY
	u := (t.P2.Y-t.P0.Y)*dX + (t.P0.X-t.P2.X)*dY
	if d < 0 {
		return s <= 0 && u <= 0 && s+u >= d
	}
	return s >= 0 && u >= 0 && s+u <= d
}

// BoundingBox returns the smallest rectangle spanning all three vertices.
func (t Triangle) BoundingBox() Rect {
	minX := min(t.P0.X, t.P1.X, t.P2.X)
	minY := min(t.P0.Y, t.P1.Y, t.P2.Y)
	maxX := max(t.P0.X, t.P1.X, t.P2.X)
	maxY := max(t.P0.Y, t.P1.Y, t.P2.Y)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func (t Triangle) String() string {
	return fmt.Sprintf("%s-%s-%s", t.P0, t.P1, t.P2)
}

// DefaultSafeZoneTimeout is how long a safe zone suppresses submenu changes.
const DefaultSafeZoneTimeout = 300 * time.Millisecond

// SafeZone is a triangle that expires after Timeout.
type SafeZone struct {
	Triangle
	Created time.Time
	Timeout time.Duration
}

// Remaining returns how long the zone stays active at now. Zero means it has
// expired or was never set.
func (z SafeZone) Remaining(now time.Time) time.Duration {
	if z.Created.IsZero() {
		return 0
	}
	left := z.Timeout - now.Sub(z.Created)
	if left < 0 {
		return 0
	}
	return left
}

// Contains reports whether p falls inside the zone while it is still active.
func (z SafeZone) Contains(p Point, now time.Time) bool {
	if z.Remaining(now) <= 0 {
		return false
	}
	return z.ContainsPoint(p)
}
