package geom

import "testing"

func TestPlace(t *testing.T) {
	viewport := Size{W: 80, H: 24}
	tests := []struct {
		name      string
		anchor    Rect
		anchorDir Direction
		size      Size
		wantPos   Point
		wantDir   Direction
	}{
		{
			name:    "fits south east of click point",
			anchor:  Rect{X: 10, Y: 5},
			size:    Size{W: 20, H: 8},
			wantPos: Point{10, 5},
			wantDir: SE,
		},
		{
			name:    "flips west on right overflow",
			anchor:  Rect{X: 70, Y: 2},
			size:    Size{W: 20, H: 5},
			wantPos: Point{50, 2},
			wantDir: SW,
		},
		{
			name:    "keeps east when flipping would leave the left edge",
			anchor:  Rect{X: 5, Y: 0, W: 70},
			size:    Size{W: 20, H: 5},
			wantPos: Point{75, 0},
			wantDir: SE,
		},
		{
			name:      "continues westward growth",
			anchor:    Rect{X: 40, Y: 4, W: 10, H: 3},
			anchorDir: SW,
			size:      Size{W: 12, H: 6},
			wantPos:   Point{28, 4},
			wantDir:   SW,
		},
		{
			name:      "west parent but no room on the left",
			anchor:    Rect{X: 4, Y: 4, W: 10, H: 3},
			anchorDir: NW,
			size:      Size{W: 12, H: 6},
			wantPos:   Point{14, 1},
			wantDir:   NE,
		},
		{
			name:    "shifts up at the bottom edge",
			anchor:  Rect{X: 0, Y: 20, W: 10, H: 3},
			size:    Size{W: 10, H: 8},
			wantPos: Point{10, 16},
			wantDir: SE,
		},
		{
			name:      "north parent bottom aligns and clamps at the top",
			anchor:    Rect{X: 0, Y: 2, W: 10, H: 3},
			anchorDir: NE,
			size:      Size{W: 10, H: 8},
			wantPos:   Point{10, 0},
			wantDir:   NE,
		},
		{
			name:    "taller than viewport clamps at the top",
			anchor:  Rect{X: 0, Y: 10},
			size:    Size{W: 10, H: 30},
			wantPos: Point{0, 0},
			wantDir: SE,
		},
	}
	for _, tc := range tests {
		pos, dir := Place(tc.anchor, tc.anchorDir, tc.size, viewport)
		if pos != tc.wantPos || dir != tc.wantDir {
			t.Fatalf("%s: Place() = %v %v, want %v %v", tc.name, pos, dir, tc.wantPos, tc.wantDir)
		}
	}
}

func TestDirectionQuadrants(t *testing.T) {
	if !NW.West() || !NW.North() || SE.West() || SE.North() {
		t.Fatalf("unexpected quadrant flags")
	}
	if SW.String() != "SW" || NE.String() != "NE" {
		t.Fatalf("unexpected direction names")
	}
}
