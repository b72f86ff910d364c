package cellcanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/wesen/gridscope/pkg/gridlines"
)

var _ gridlines.Canvas = (*Canvas)(nil)

// affine is a 2D affine transform
//
//	| a c e |
//	| b d f |
//
// applied as column vectors: x' = a·x + c·y + e, y' = b·x + d·y + f.
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// mul composes so that n is applied before m: (m.mul(n))(p) = m(n(p)).
// Successive Translate/Scale/Rotate calls therefore transform subsequent
// geometry innermost-last, matching immediate-mode drawing APIs.
func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

func (m affine) translate(dx, dy float64) affine { return m.mul(affine{a: 1, d: 1, e: dx, f: dy}) }
func (m affine) scale(s float64) affine          { return m.mul(affine{a: s, d: s}) }

func (m affine) rotate(angle float64) affine {
	sin, cos := math.Sincos(angle)
	return m.mul(affine{a: cos, b: sin, c: -sin, d: cos})
}

// Canvas implements gridlines.Canvas over a Buffer. The transform and clip
// stacks never underflow: popping the last entry is ignored.
type Canvas struct {
	buf    *Buffer
	xform  []affine
	clip   []image.Rectangle
	stroke color.RGBA
	width  float64 // accepted for interface parity; cells have no stroke width
}

// New wraps buf in a Canvas with an identity transform, a full-buffer clip,
// and a white stroke.
func New(buf *Buffer) *Canvas {
	return &Canvas{
		buf:    buf,
		xform:  []affine{identity},
		clip:   []image.Rectangle{image.Rect(0, 0, buf.W, buf.H)},
		stroke: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		width:  1,
	}
}

// Buffer returns the underlying cell buffer for rendering.
func (c *Canvas) Buffer() *Buffer { return c.buf }

func (c *Canvas) Size() (float64, float64) {
	return float64(c.buf.W), float64(c.buf.H)
}

func (c *Canvas) PushClip(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	c.clip = append(c.clip, r.Intersect(c.clip[len(c.clip)-1]))
}

func (c *Canvas) PopClip() {
	if len(c.clip) > 1 {
		c.clip = c.clip[:len(c.clip)-1]
	}
}

func (c *Canvas) PushTransform() {
	c.xform = append(c.xform, c.top())
}

func (c *Canvas) PopTransform() {
	if len(c.xform) > 1 {
		c.xform = c.xform[:len(c.xform)-1]
	}
}

func (c *Canvas) ResetTransform() {
	c.xform[len(c.xform)-1] = identity
}

func (c *Canvas) Translate(dx, dy float64) { c.setTop(c.top().translate(dx, dy)) }
func (c *Canvas) Scale(f float64)          { c.setTop(c.top().scale(f)) }
func (c *Canvas) Rotate(angle float64)     { c.setTop(c.top().rotate(angle)) }

func (c *Canvas) SetStroke(col color.RGBA) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)   { c.width = w }

func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	m := c.top()
	ax, ay := m.apply(x0, y0)
	bx, by := m.apply(x1, y1)
	pts := Bresenham(round(ax), round(ay), round(bx), round(by))
	for i, p := range pts {
		c.set(p.X, p.Y, lineCharAt(pts, i))
	}
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	m := c.top()
	ax, ay := m.apply(x, y)
	bx, by := m.apply(x+w, y+h)
	x0, x1 := round(math.Min(ax, bx)), round(math.Max(ax, bx))
	y0, y1 := round(math.Min(ay, by)), round(math.Max(ay, by))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.set(px, py, '█')
		}
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	// Parametric outline with the vertical radius halved for cell aspect.
	m := c.top()
	const segments = 24
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / segments
		sx, sy := m.apply(cx+r*math.Cos(t), cy+r/2*math.Sin(t))
		c.set(round(sx), round(sy), '·')
	}
}

func (c *Canvas) Text(s string, x, y float64) {
	tx, ty := c.top().apply(x, y)
	px, py := round(tx), round(ty)
	for i, ch := range s {
		c.set(px+i, py, ch)
	}
}

// set writes one cell in the current stroke color, honoring the clip.
func (c *Canvas) set(x, y int, ch rune) {
	if image.Pt(x, y).In(c.clip[len(c.clip)-1]) {
		c.buf.Set(x, y, ch, c.stroke)
	}
}

func (c *Canvas) top() affine     { return c.xform[len(c.xform)-1] }
func (c *Canvas) setTop(m affine) { c.xform[len(c.xform)-1] = m }

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
