package gridlines

import "image/color"

// Canvas is the drawing collaborator the grid renders through. Backends own
// ambient drawing state: a transform stack, a clip stack, the stroke color
// and the line width. Draw restores everything it touches before returning
// so nested overlays sharing the same backend are unaffected.
//
// All geometry passes through the current transform, Text included; labels
// that must stay screen-aligned are drawn under ResetTransform.
type Canvas interface {
	// Size reports the full drawing surface in screen units. Used as the
	// default viewport when the camera does not carry one.
	Size() (w, h float64)

	PushClip(x, y, w, h float64)
	PopClip()

	PushTransform()
	PopTransform()
	// ResetTransform replaces the top of the transform stack with the
	// identity, leaving pushed entries below it intact.
	ResetTransform()
	Translate(dx, dy float64)
	Scale(f float64)
	Rotate(angle float64)

	SetStroke(c color.RGBA)
	SetLineWidth(w float64)

	Line(x0, y0, x1, y1 float64)
	FillRect(x, y, w, h float64)
	StrokeCircle(cx, cy, r float64)
	// Text draws s left-aligned at (x, y).
	Text(s string, x, y float64)
}
