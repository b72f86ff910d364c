package cellcanvas

import (
	"image"
	"testing"
)

// ── Bresenham ──

func TestBresenhamHorizontal(t *testing.T) {
	pts := Bresenham(0, 0, 5, 0)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d: %v", len(pts), pts)
	}
	for i, p := range pts {
		if p.X != i || p.Y != 0 {
			t.Errorf("point %d: expected (%d,0), got %v", i, i, p)
		}
	}
}

func TestBresenhamDiagonal(t *testing.T) {
	pts := Bresenham(0, 0, 5, 5)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d: %v", len(pts), pts)
	}
	for i, p := range pts {
		if p.X != i || p.Y != i {
			t.Errorf("point %d: expected (%d,%d), got %v", i, i, i, p)
		}
	}
}

func TestBresenhamSteepAndReverse(t *testing.T) {
	pts := Bresenham(2, 8, 0, 0)
	if pts[0] != image.Pt(2, 8) {
		t.Errorf("first point: expected (2,8), got %v", pts[0])
	}
	if pts[len(pts)-1] != image.Pt(0, 0) {
		t.Errorf("last point: expected (0,0), got %v", pts[len(pts)-1])
	}
	if len(pts) < 9 {
		t.Errorf("steep line should have at least 9 points, got %d", len(pts))
	}
}

func TestBresenhamZeroLength(t *testing.T) {
	pts := Bresenham(3, 3, 3, 3)
	if len(pts) != 1 || pts[0] != image.Pt(3, 3) {
		t.Fatalf("zero-length line: expected [(3,3)], got %v", pts)
	}
}

// ── LineChar ──

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '│'},
		{0, -1, '│'},
		{1, 0, '─'},
		{-1, 0, '─'},
		{1, 1, '\\'},
		{-1, -1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tc := range tests {
		if got := LineChar(tc.dx, tc.dy); got != tc.want {
			t.Errorf("LineChar(%d,%d) = %c, want %c", tc.dx, tc.dy, got, tc.want)
		}
	}
}
