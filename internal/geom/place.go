package geom

// Direction records which quadrant a panel grew into relative to its anchor.
// Children inherit it so a chain of submenus keeps growing the same way once
// it had to flip.
type Direction int

const (
	SE Direction = iota
	NE
	SW
	NW
)

func (d Direction) String() string {
	switch d {
	case NE:
		return "NE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	default:
		return "SE"
	}
}

// West reports whether the panel grew to the left of its anchor.
func (d Direction) West() bool { return d == SW || d == NW }

// North reports whether the panel grew upwards from its anchor.
func (d Direction) North() bool { return d == NE || d == NW }

func directionOf(west, north bool) Direction {
	switch {
	case west && north:
		return NW
	case west:
		return SW
	case north:
		return NE
	default:
		return SE
	}
}

// Place positions a panel of the given size next to anchor so it stays inside
// the viewport, continuing the growth direction of the anchor's own panel.
func Place(anchor Rect, anchorDir Direction, size Size, viewport Size) (Point, Direction) {
	x, west := placeX(anchor, anchorDir, size, viewport)
	y, north := placeY(anchor, anchorDir, size, viewport)
	return Point{X: x, Y: y}, directionOf(west, north)
}

func placeX(anchor Rect, anchorDir Direction, size Size, viewport Size) (int, bool) {
	origin := anchor.X + anchor.W
	flipped := anchor.X - size.W
	overflow := origin+size.W > viewport.W
	if (overflow || anchorDir.West()) && flipped >= 0 {
		return flipped, true
	}
	return origin, false
}

func placeY(anchor Rect, anchorDir Direction, size Size, viewport Size) (int, bool) {
	if anchorDir.North() {
		origin := anchor.Y + anchor.H - size.H
		if origin < 0 {
			origin = 0
		}
		return origin, true
	}
	origin := anchor.Y
	if past := origin + size.H - viewport.H; past > 0 {
		origin -= past
	}
	if origin < 0 {
		origin = 0
	}
	return origin, false
}
