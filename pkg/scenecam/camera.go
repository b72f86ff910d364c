// Package scenecam converts coordinates between screen space and world
// space under a 2D camera transform: a world position, a zoom factor, a
// rotation angle, and a screen-space viewport rectangle.
//
// A State is a read-only snapshot owned by the caller; everything here is
// pure arithmetic. Zoom must be positive: the math divides by it and this
// package does not validate (it sits on a per-frame hot path).
package scenecam

import "math"

// Point is a 2D coordinate, world or screen depending on context.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle: min corner plus size.
type Rect struct {
	X, Y, W, H float64
}

// State describes a camera view over the world. X, Y is the world position
// at the viewport center, Zoom is screen units per world unit, Angle is the
// view rotation in radians, and Viewport is where the camera renders on
// screen.
//
// A partially filled State is normalized once at the boundary with
// Normalize rather than checked on every call.
type State struct {
	X, Y     float64
	Zoom     float64
	Angle    float64
	Viewport Rect
}

// Normalize returns a copy with unset fields replaced by defaults: zoom 1
// and a full-screen (0,0,screenW,screenH) viewport. Position and angle
// already default to zero.
func (s State) Normalize(screenW, screenH float64) State {
	if s.Zoom == 0 {
		s.Zoom = 1
	}
	if s.Viewport.W == 0 && s.Viewport.H == 0 {
		s.Viewport = Rect{W: screenW, H: screenH}
	}
	return s
}

// ToWorld maps a screen coordinate to the world coordinate under it.
// Inverse of ToScreen up to floating-point error.
func (s State) ToWorld(sx, sy float64) (wx, wy float64) {
	x := (sx - s.Viewport.W/2 - s.Viewport.X) / s.Zoom
	y := (sy - s.Viewport.H/2 - s.Viewport.Y) / s.Zoom
	sin, cos := math.Sincos(s.Angle)
	return x*cos - y*sin + s.X, x*sin + y*cos + s.Y
}

// ToScreen maps a world coordinate to its screen position.
func (s State) ToScreen(wx, wy float64) (sx, sy float64) {
	x := wx - s.X
	y := wy - s.Y
	sin, cos := math.Sincos(s.Angle)
	rx := x*cos + y*sin
	ry := y*cos - x*sin
	return rx*s.Zoom + s.Viewport.W/2 + s.Viewport.X,
		ry*s.Zoom + s.Viewport.H/2 + s.Viewport.Y
}
