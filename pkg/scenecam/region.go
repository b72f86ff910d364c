package scenecam

import "math"

// Visible returns the world-space axis-aligned box covering everything the
// viewport can show. Under rotation the box bounds the rotated viewport, so
// it over-covers near diagonal angles; callers iterating grid lines rely on
// that slack. Under-coverage would be a bug.
func (s State) Visible() Rect {
	w := s.Viewport.W / s.Zoom
	h := s.Viewport.H / s.Zoom
	if s.Angle != 0 {
		sin, cos := math.Sincos(s.Angle)
		sin, cos = math.Abs(sin), math.Abs(cos)
		w, h = cos*w+sin*h, sin*w+cos*h
	}
	return Rect{X: s.X - w/2, Y: s.Y - h/2, W: w, H: h}
}

// Corners returns the exact world positions of the four viewport corners,
// ordered top-left, top-right, bottom-right, bottom-left. Unlike Visible
// these are not expanded to a bounding box; they are meant for placing
// things on the viewport boundary.
func (s State) Corners() [4]Point {
	v := s.Viewport
	screen := [4]Point{
		{X: v.X, Y: v.Y},
		{X: v.X + v.W, Y: v.Y},
		{X: v.X + v.W, Y: v.Y + v.H},
		{X: v.X, Y: v.Y + v.H},
	}
	var world [4]Point
	for i, p := range screen {
		x, y := s.ToWorld(p.X, p.Y)
		world[i] = Point{X: x, Y: y}
	}
	return world
}
