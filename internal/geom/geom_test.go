package geom

import (
	"testing"
	"time"
)

func TestTriangleContainsPoint(t *testing.T) {
	tri := Triangle{P0: Point{0, 0}, P1: Point{0, 10}, P2: Point{10, 0}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{2, 2}, true},
		{Point{8, 8}, false},
		{Point{0, 0}, true},
		{Point{5, 5}, true},
		{Point{-1, 2}, false},
		{Point{11, 0}, false},
	}
	for _, tc := range tests {
		if got := tri.ContainsPoint(tc.p); got != tc.want {
			t.Fatalf("ContainsPoint(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestTriangleWindingIndependent(t *testing.T) {
	a := Triangle{P0: Point{0, 0}, P1: Point{10, 0}, P2: Point{0, 10}}
	if !a.ContainsPoint(Point{2, 2}) {
		t.Fatalf("expected reversed winding to contain (2,2)")
	}
	if a.ContainsPoint(Point{8, 8}) {
		t.Fatalf("expected reversed winding to exclude (8,8)")
	}
}

func TestTriangleDegenerate(t *testing.T) {
	line := Triangle{P0: Point{0, 0}, P1: Point{5, 5}, P2: Point{10, 10}}
	if line.ContainsPoint(Point{5, 5}) {
		t.Fatalf("expected collinear triangle to contain nothing")
	}
	dot := Triangle{P0: Point{3, 3}, P1: Point{3, 3}, P2: Point{3, 3}}
	if dot.ContainsPoint(Point{3, 3}) {
		t.Fatalf("expected point triangle to contain nothing")
	}
}

func TestTriangleBoundingBox(t *testing.T) {
	tri := Triangle{P0: Point{4, 9}, P1: Point{12, 2}, P2: Point{12, 14}}
	got := tri.BoundingBox()
	want := Rect{X: 4, Y: 2, W: 8, H: 12}
	if got != want {
		t.Fatalf("BoundingBox() = %#v, want %#v", got, want)
	}
}

func TestSafeZoneExpires(t *testing.T) {
	start := time.Unix(1000, 0)
	zone := SafeZone{
		Triangle: Triangle{P0: Point{0, 0}, P1: Point{0, 10}, P2: Point{10, 0}},
		Created:  start,
		Timeout:  DefaultSafeZoneTimeout,
	}
	if !zone.Contains(Point{2, 2}, start.Add(299*time.Millisecond)) {
		t.Fatalf("expected zone active before timeout")
	}
	if zone.Contains(Point{2, 2}, start.Add(300*time.Millisecond)) {
		t.Fatalf("expected zone inactive at timeout")
	}
	if got := zone.Remaining(start.Add(100 * time.Millisecond)); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms remaining, got %v", got)
	}
	if (SafeZone{}).Contains(Point{0, 0}, start) {
		t.Fatalf("expected unset zone to contain nothing")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(Point{2, 3}) || !r.Contains(Point{5, 4}) {
		t.Fatalf("expected corners inside")
	}
	if r.Contains(Point{6, 4}) || r.Contains(Point{5, 5}) {
		t.Fatalf("expected exclusive right/bottom edges")
	}
}
