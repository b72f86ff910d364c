// Package gridlines renders an infinite, zoomable, rotatable Cartesian
// reference grid for 2D scene viewers: adaptive line spacing, axis
// highlighting, an origin marker, and optional coordinate labels, drawn
// through a backend-agnostic Canvas.
//
// The camera math lives in package scenecam; this package decides where
// lines go and what color they get.
package gridlines

import (
	"fmt"
	"image/color"
	"math"

	"github.com/wesen/gridscope/pkg/scenecam"
)

const (
	originHalf   = 2 // half-size of the origin square, screen px
	originRadius = 8 // origin circle radius, screen px
	labelOffset  = 2 // label inset from its edge intersection, screen px
)

var strokeDefault = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Draw renders one grid frame for cam through cv. cam and v are read-only
// snapshots for this call; both are normalized here against cv.Size(), so
// partially filled values are fine. Emphasis counters are per axis and per
// call, nothing persists across frames.
//
// On return the canvas clip and transform stacks are back where they
// started and stroke color and line width are reset to white / 1.
func Draw(cv Canvas, cam scenecam.State, v Visuals) {
	sw, sh := cv.Size()
	cam = cam.Normalize(sw, sh)
	v = v.Normalize()

	vp := cam.Viewport
	cv.PushClip(vp.X, vp.Y, vp.W, vp.H)
	defer cv.PopClip()
	defer func() {
		cv.SetStroke(strokeDefault)
		cv.SetLineWidth(1)
	}()

	vis := cam.Visible()
	minor := v.MinorInterval(cam.Zoom)
	major := v.MajorInterval(cam.Zoom)
	corners := cam.Corners()

	// Vertical lines label against the top screen edge and horizontal
	// lines against the left one, swapped near diagonal rotations so the
	// two label runs don't pile onto the same edge.
	topEdge := [2]scenecam.Point{corners[0], corners[1]}
	leftEdge := [2]scenecam.Point{corners[0], corners[3]}
	xEdge, yEdge := topEdge, leftEdge
	if swapLabelEdges(cam.Angle) {
		xEdge, yEdge = leftEdge, topEdge
	}

	faded := fade(v.BaseColor, v.Fade)

	// World transform: world coordinates map straight to screen pixels for
	// the sweep, with stroke width compensated so lines keep a constant
	// on-screen thickness at any zoom.
	cv.PushTransform()
	defer cv.PopTransform()
	cv.Translate(vp.X+vp.W/2, vp.Y+vp.H/2)
	cv.Scale(cam.Zoom)
	cv.Rotate(-cam.Angle)
	cv.Translate(-cam.X, -cam.Y)
	cv.SetLineWidth(1 / cam.Zoom)

	// Vertical sweep. Starting position is major-aligned, so the counter
	// starts saturated and the first line draws emphasized.
	count := v.Subdivisions
	for x := floorTo(vis.X, major); x <= vis.X+vis.W; x += minor {
		switch {
		case math.Abs(x) < minor/2:
			cv.SetStroke(v.YAxisColor)
			count = 0
		case count >= v.Subdivisions:
			cv.SetStroke(v.BaseColor)
			count = 0
		default:
			cv.SetStroke(faded)
		}
		count++
		cv.Line(x, vis.Y, x, vis.Y+vis.H)
		if v.Labels {
			line := [2]scenecam.Point{{X: x, Y: vis.Y}, {X: x, Y: vis.Y + vis.H}}
			drawLabel(cv, cam, fmt.Sprintf("x=%g", x), line, xEdge)
		}
	}

	// Horizontal sweep, same emphasis rules with the X axis highlight.
	count = v.Subdivisions
	for y := floorTo(vis.Y, major); y <= vis.Y+vis.H; y += minor {
		switch {
		case math.Abs(y) < minor/2:
			cv.SetStroke(v.XAxisColor)
			count = 0
		case count >= v.Subdivisions:
			cv.SetStroke(v.BaseColor)
			count = 0
		default:
			cv.SetStroke(faded)
		}
		count++
		cv.Line(vis.X, y, vis.X+vis.W, y)
		if v.Labels {
			line := [2]scenecam.Point{{X: vis.X, Y: y}, {X: vis.X + vis.W, Y: y}}
			drawLabel(cv, cam, fmt.Sprintf("y=%g", y), line, yEdge)
		}
	}

	// Origin marker, drawn in screen space so zoom never scales it: a
	// small filled square on world (0,0) plus a fixed-radius circle.
	cv.ResetTransform()
	cv.SetLineWidth(1)
	cv.SetStroke(strokeDefault)
	ox, oy := cam.ToScreen(0, 0)
	cv.FillRect(ox-originHalf, oy-originHalf, 2*originHalf, 2*originHalf)
	cv.StrokeCircle(ox, oy, originRadius)
}

// drawLabel puts text where the world-space grid line meets the given
// viewport edge, in an unrotated, unscaled screen overlay. Parallel line
// and edge means no intersection and no label.
func drawLabel(cv Canvas, cam scenecam.State, text string, line, edge [2]scenecam.Point) {
	p, ok := Intersect(line[0], line[1], edge[0], edge[1])
	if !ok {
		return
	}
	sx, sy := cam.ToScreen(p.X, p.Y)
	cv.PushTransform()
	cv.ResetTransform()
	cv.Text(text, sx+labelOffset, sy+labelOffset)
	cv.PopTransform()
}

// swapLabelEdges reports whether the x/y label edges should trade places.
// Best-effort heuristic: past 45° of rotation (mod π) vertical grid lines
// run closer to the top screen edge than to the left one, so keeping the
// default assignment would stack both label runs together.
func swapLabelEdges(angle float64) bool {
	m := math.Mod(angle+math.Pi/4, math.Pi)
	if m < 0 {
		m += math.Pi
	}
	return m > math.Pi/2
}

// floorTo rounds v down to a multiple of step.
func floorTo(v, step float64) float64 {
	return math.Floor(v/step) * step
}
