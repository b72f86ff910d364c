package scenecam

// Windowed is the capability an external camera object needs to drive the
// grid: position, zoom, rotation, and a window accessor reporting the
// screen rectangle the camera renders into. Anything satisfying it can be
// snapshotted with Capture; callers never type-sniff camera shapes.
type Windowed interface {
	Position() (x, y float64)
	Zoom() float64
	Angle() float64
	Window() (x, y, w, h float64)
}

// Capture snapshots a Windowed camera into a State for one draw call.
func Capture(c Windowed) State {
	x, y := c.Position()
	wx, wy, ww, wh := c.Window()
	return State{
		X:        x,
		Y:        y,
		Zoom:     c.Zoom(),
		Angle:    c.Angle(),
		Viewport: Rect{X: wx, Y: wy, W: ww, H: wh},
	}
}
