package gridlines

import (
	"image/color"
	"math"
	"testing"

	"github.com/wesen/gridscope/pkg/scenecam"
)

// recordCanvas is a Canvas that records every call for assertions.
type canvasOp struct {
	name   string
	args   []float64
	text   string
	stroke color.RGBA
}

type recordCanvas struct {
	w, h   float64
	stroke color.RGBA
	ops    []canvasOp
}

func newRecordCanvas(w, h float64) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) rec(name string, args ...float64) {
	c.ops = append(c.ops, canvasOp{name: name, args: args, stroke: c.stroke})
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordCanvas) PushClip(x, y, w, h float64) { c.rec("pushclip", x, y, w, h) }
func (c *recordCanvas) PopClip()                    { c.rec("popclip") }

func (c *recordCanvas) PushTransform()         { c.rec("pushxform") }
func (c *recordCanvas) PopTransform()          { c.rec("popxform") }
func (c *recordCanvas) ResetTransform()        { c.rec("resetxform") }
func (c *recordCanvas) Translate(dx, dy float64) { c.rec("translate", dx, dy) }
func (c *recordCanvas) Scale(f float64)        { c.rec("scale", f) }
func (c *recordCanvas) Rotate(angle float64)   { c.rec("rotate", angle) }

func (c *recordCanvas) SetLineWidth(w float64) { c.rec("linewidth", w) }

func (c *recordCanvas) Line(x0, y0, x1, y1 float64)    { c.rec("line", x0, y0, x1, y1) }
func (c *recordCanvas) FillRect(x, y, w, h float64)    { c.rec("fillrect", x, y, w, h) }
func (c *recordCanvas) StrokeCircle(cx, cy, r float64) { c.rec("circle", cx, cy, r) }

func (c *recordCanvas) SetStroke(col color.RGBA) {
	c.stroke = col
	c.rec("stroke")
}

func (c *recordCanvas) Text(s string, x, y float64) {
	c.ops = append(c.ops, canvasOp{name: "text", args: []float64{x, y}, text: s, stroke: c.stroke})
}

func (c *recordCanvas) find(name string) []canvasOp {
	var out []canvasOp
	for _, o := range c.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

// verticalLines returns line ops with x0 == x1 (world-space vertical).
func (c *recordCanvas) verticalLines() []canvasOp {
	var out []canvasOp
	for _, o := range c.find("line") {
		if o.args[0] == o.args[2] {
			out = append(out, o)
		}
	}
	return out
}

// ── emphasis coloring ──

func TestDrawEmphasisSequence(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	v := DefaultVisuals()
	v.Labels = false
	Draw(cv, scenecam.State{}, v)

	// zoom 1: minor 256, major 1024; sweep starts at floor(-400,1024)=-1024.
	wantX := []float64{-1024, -768, -512, -256, 0, 256}
	base := v.BaseColor
	dim := color.RGBA{R: 110, G: 110, B: 110, A: 255}
	wantColor := []color.RGBA{base, dim, dim, dim, v.YAxisColor, dim}

	lines := cv.verticalLines()
	if len(lines) != len(wantX) {
		t.Fatalf("vertical lines: expected %d, got %d", len(wantX), len(lines))
	}
	for i, l := range lines {
		if l.args[0] != wantX[i] {
			t.Errorf("line %d: expected x=%v, got %v", i, wantX[i], l.args[0])
		}
		if l.stroke != wantColor[i] {
			t.Errorf("line %d (x=%v): expected stroke %v, got %v", i, wantX[i], wantColor[i], l.stroke)
		}
		if l.args[1] != -300 || l.args[3] != 300 {
			t.Errorf("line %d: expected full height -300..300, got %v..%v", i, l.args[1], l.args[3])
		}
	}
}

func TestDrawHorizontalAxisColor(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	v := DefaultVisuals()
	v.Labels = false
	Draw(cv, scenecam.State{}, v)

	found := false
	for _, o := range c0Horizontal(cv) {
		if o.args[1] == 0 {
			found = true
			if o.stroke != v.XAxisColor {
				t.Errorf("y=0 line: expected X axis color %v, got %v", v.XAxisColor, o.stroke)
			}
		}
	}
	if !found {
		t.Fatal("no horizontal line at y=0")
	}
}

func c0Horizontal(cv *recordCanvas) []canvasOp {
	var out []canvasOp
	for _, o := range cv.find("line") {
		if o.args[1] == o.args[3] {
			out = append(out, o)
		}
	}
	return out
}

// ── transform and state discipline ──

func TestDrawRestoresCanvasState(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	Draw(cv, scenecam.State{X: 33, Y: -7, Zoom: 2.5, Angle: 0.4}, DefaultVisuals())

	if p, q := len(cv.find("pushclip")), len(cv.find("popclip")); p != q || p != 1 {
		t.Errorf("clip: expected one balanced push/pop, got %d/%d", p, q)
	}
	if p, q := len(cv.find("pushxform")), len(cv.find("popxform")); p != q {
		t.Errorf("transform: %d pushes vs %d pops", p, q)
	}

	widths := cv.find("linewidth")
	if len(widths) == 0 {
		t.Fatal("no line width calls")
	}
	if got := widths[0].args[0]; got != 1/2.5 {
		t.Errorf("world line width: expected %v, got %v", 1/2.5, got)
	}
	if got := widths[len(widths)-1].args[0]; got != 1 {
		t.Errorf("final line width: expected reset to 1, got %v", got)
	}
	if cv.stroke != strokeDefault {
		t.Errorf("final stroke: expected %v, got %v", strokeDefault, cv.stroke)
	}
}

func TestDrawWorldTransformOrder(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	v := DefaultVisuals()
	v.Labels = false
	cam := scenecam.State{X: 10, Y: 20, Zoom: 4, Angle: 0.5}
	Draw(cv, cam, v)

	// translate(center) scale(zoom) rotate(-angle) translate(-pos)
	var seq []canvasOp
	for _, o := range cv.ops {
		switch o.name {
		case "translate", "scale", "rotate":
			seq = append(seq, o)
		}
	}
	if len(seq) != 4 {
		t.Fatalf("transform ops: expected 4, got %d", len(seq))
	}
	if seq[0].name != "translate" || seq[0].args[0] != 400 || seq[0].args[1] != 300 {
		t.Errorf("op 0: expected translate(400,300), got %v %v", seq[0].name, seq[0].args)
	}
	if seq[1].name != "scale" || seq[1].args[0] != 4 {
		t.Errorf("op 1: expected scale(4), got %v %v", seq[1].name, seq[1].args)
	}
	if seq[2].name != "rotate" || seq[2].args[0] != -0.5 {
		t.Errorf("op 2: expected rotate(-0.5), got %v %v", seq[2].name, seq[2].args)
	}
	if seq[3].name != "translate" || seq[3].args[0] != -10 || seq[3].args[1] != -20 {
		t.Errorf("op 3: expected translate(-10,-20), got %v %v", seq[3].name, seq[3].args)
	}
}

// ── origin marker ──

func TestOriginMarkerAtViewportCenter(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	Draw(cv, scenecam.State{}, DefaultVisuals())

	rects := cv.find("fillrect")
	if len(rects) != 1 {
		t.Fatalf("expected one origin square, got %d", len(rects))
	}
	r := rects[0]
	if r.args[0] != 398 || r.args[1] != 298 || r.args[2] != 4 || r.args[3] != 4 {
		t.Errorf("origin square: expected (398,298,4,4), got %v", r.args)
	}

	circles := cv.find("circle")
	if len(circles) != 1 {
		t.Fatalf("expected one origin circle, got %d", len(circles))
	}
	c := circles[0]
	if c.args[0] != 400 || c.args[1] != 300 || c.args[2] != 8 {
		t.Errorf("origin circle: expected (400,300,8), got %v", c.args)
	}
}

// ── labels ──

func TestDrawLabels(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	Draw(cv, scenecam.State{}, DefaultVisuals())

	texts := cv.find("text")
	if len(texts) == 0 {
		t.Fatal("labels enabled but no text drawn")
	}

	var xZero, yZero *canvasOp
	for i := range texts {
		switch texts[i].text {
		case "x=0":
			xZero = &texts[i]
		case "y=0":
			yZero = &texts[i]
		}
	}
	if xZero == nil {
		t.Fatal("no x=0 label")
	}
	// Vertical x=0 line meets the top edge at world (0,-300) = screen
	// (400,0), label offset +2.
	if xZero.args[0] != 402 || xZero.args[1] != 2 {
		t.Errorf("x=0 label: expected (402,2), got %v", xZero.args)
	}
	if yZero == nil {
		t.Fatal("no y=0 label")
	}
	if yZero.args[0] != 2 || yZero.args[1] != 302 {
		t.Errorf("y=0 label: expected (2,302), got %v", yZero.args)
	}
}

func TestDrawNoLabelsWhenDisabled(t *testing.T) {
	cv := newRecordCanvas(800, 600)
	v := DefaultVisuals()
	v.Labels = false
	Draw(cv, scenecam.State{}, v)
	if n := len(cv.find("text")); n != 0 {
		t.Errorf("labels disabled: expected no text, got %d", n)
	}
}

// ── label edge swap heuristic ──

func TestSwapLabelEdges(t *testing.T) {
	cases := []struct {
		angle float64
		want  bool
	}{
		{0, false},
		{math.Pi / 8, false},
		{math.Pi / 2, true},
		{math.Pi, false},
		{-math.Pi / 2, true},
	}
	for _, tc := range cases {
		if got := swapLabelEdges(tc.angle); got != tc.want {
			t.Errorf("angle %v: expected swap=%v, got %v", tc.angle, tc.want, got)
		}
	}
}
