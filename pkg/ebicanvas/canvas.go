// Package ebicanvas implements gridlines.Canvas on an Ebitengine image, for
// hosts that draw the grid under a pixel scene rather than a terminal one.
//
// The transform stack is a stack of ebiten.GeoM matrices; clipping uses
// SubImage views of the root image, which keep the root's coordinate
// system. Stroke widths are given in pre-transform units and scaled by the
// current transform, so the grid's 1/zoom width compensation lands at one
// pixel on screen.
package ebicanvas

import (
	"image"
	imgcolor "image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wesen/gridscope/pkg/gridlines"
)

var _ gridlines.Canvas = (*Canvas)(nil)

// Canvas draws grid primitives onto an ebiten.Image. Build one per frame
// around the Draw destination; it holds no resources beyond the stacks.
type Canvas struct {
	root   *ebiten.Image
	dst    []*ebiten.Image // clip stack, top is the active target
	geoms  []ebiten.GeoM
	stroke imgcolor.RGBA
	width  float64
}

// New wraps dst with an identity transform, no clip, and a white 1px stroke.
func New(dst *ebiten.Image) *Canvas {
	return &Canvas{
		root:   dst,
		dst:    []*ebiten.Image{dst},
		geoms:  []ebiten.GeoM{{}},
		stroke: imgcolor.RGBA{R: 255, G: 255, B: 255, A: 255},
		width:  1,
	}
}

func (c *Canvas) Size() (float64, float64) {
	b := c.root.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) PushClip(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	r = r.Intersect(c.top().Bounds())
	c.dst = append(c.dst, c.root.SubImage(r).(*ebiten.Image))
}

func (c *Canvas) PopClip() {
	if len(c.dst) > 1 {
		c.dst = c.dst[:len(c.dst)-1]
	}
}

func (c *Canvas) PushTransform() {
	c.geoms = append(c.geoms, c.geom())
}

func (c *Canvas) PopTransform() {
	if len(c.geoms) > 1 {
		c.geoms = c.geoms[:len(c.geoms)-1]
	}
}

func (c *Canvas) ResetTransform() {
	c.geoms[len(c.geoms)-1] = ebiten.GeoM{}
}

// compose applies op before the current transform: subsequent geometry goes
// through op first, matching immediate-mode transform call order.
func (c *Canvas) compose(op ebiten.GeoM) {
	op.Concat(c.geom())
	c.geoms[len(c.geoms)-1] = op
}

func (c *Canvas) Translate(dx, dy float64) {
	var g ebiten.GeoM
	g.Translate(dx, dy)
	c.compose(g)
}

func (c *Canvas) Scale(f float64) {
	var g ebiten.GeoM
	g.Scale(f, f)
	c.compose(g)
}

func (c *Canvas) Rotate(angle float64) {
	var g ebiten.GeoM
	g.Rotate(angle)
	c.compose(g)
}

func (c *Canvas) SetStroke(col imgcolor.RGBA) { c.stroke = col }
func (c *Canvas) SetLineWidth(w float64)      { c.width = w }

func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	m := c.geom()
	ax, ay := m.Apply(x0, y0)
	bx, by := m.Apply(x1, y1)
	vector.StrokeLine(c.top(),
		float32(ax), float32(ay), float32(bx), float32(by),
		float32(c.width*c.scale()), c.stroke, true)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	m := c.geom()
	ax, ay := m.Apply(x, y)
	s := c.scale()
	vector.DrawFilledRect(c.top(),
		float32(ax), float32(ay), float32(w*s), float32(h*s),
		c.stroke, true)
}

func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	m := c.geom()
	ax, ay := m.Apply(cx, cy)
	s := c.scale()
	vector.StrokeCircle(c.top(),
		float32(ax), float32(ay), float32(r*s),
		float32(c.width*s), c.stroke, true)
}

// Text draws with ebitenutil's debug face: fixed size, white. Good enough
// for coordinate labels; hosts wanting styled text draw their own overlay.
func (c *Canvas) Text(s string, x, y float64) {
	m := c.geom()
	tx, ty := m.Apply(x, y)
	ebitenutil.DebugPrintAt(c.top(), s, int(tx), int(ty))
}

func (c *Canvas) top() *ebiten.Image { return c.dst[len(c.dst)-1] }
func (c *Canvas) geom() ebiten.GeoM  { return c.geoms[len(c.geoms)-1] }

// scale extracts the uniform scale of the current transform so pre-transform
// stroke widths land on screen at the intended pixel size.
func (c *Canvas) scale() float64 {
	m := c.geom()
	return math.Hypot(m.Element(0, 0), m.Element(1, 0))
}
