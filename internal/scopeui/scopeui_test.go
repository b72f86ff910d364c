package scopeui

import (
	"image"
	"math"
	"testing"

	tea "charm.land/bubbletea/v2"
)

const tol = 1e-9

func sized(w, h int) Model {
	m := NewModel()
	m.Width = w
	m.Height = h
	return m
}

// ── layout ──

func TestLayoutRegions(t *testing.T) {
	m := sized(120, 40)

	cv := m.canvasRect()
	if cv != image.Rect(0, 1, 90, 39) {
		t.Errorf("canvas: expected (0,1)-(90,39), got %v", cv)
	}

	pn := m.panelRect()
	if pn != image.Rect(90, 1, 120, 39) {
		t.Errorf("panel: expected (90,1)-(120,39), got %v", pn)
	}

	if cv.Overlaps(pn) {
		t.Errorf("canvas %v overlaps panel %v", cv, pn)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	m := sized(10, 2)
	if r := m.canvasRect(); r != (image.Rectangle{}) {
		t.Errorf("tiny terminal: expected empty canvas rect, got %v", r)
	}
}

// ── keys ──

func TestKeyZoom(t *testing.T) {
	m := sized(120, 40)

	next, _ := m.Update(tea.KeyPressMsg{Code: '+', Text: "+"})
	m = next.(Model)
	if got := m.Cam.Zoom; math.Abs(got-1.25) > tol {
		t.Fatalf("zoom after +: expected 1.25, got %v", got)
	}

	next, _ = m.Update(tea.KeyPressMsg{Code: '-', Text: "-"})
	m = next.(Model)
	if got := m.Cam.Zoom; math.Abs(got-1) > tol {
		t.Fatalf("zoom after + then -: expected 1, got %v", got)
	}
}

func TestKeyRotateAndReset(t *testing.T) {
	m := sized(120, 40)

	next, _ := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	m = next.(Model)
	if got := m.Cam.Angle; math.Abs(got-rotStep) > tol {
		t.Fatalf("angle after r: expected %v, got %v", rotStep, got)
	}

	m.Cam.X, m.Cam.Y, m.Cam.Zoom = 42, -7, 3
	next, _ = m.Update(tea.KeyPressMsg{Code: '0', Text: "0"})
	m = next.(Model)
	if m.Cam.X != 0 || m.Cam.Y != 0 || m.Cam.Zoom != 1 || m.Cam.Angle != 0 {
		t.Fatalf("camera after 0: expected reset, got %+v", m.Cam)
	}
}

func TestKeyPanFollowsRotation(t *testing.T) {
	m := sized(120, 40)
	m.Cam.Angle = math.Pi / 2

	// Screen-right pan under a 90° camera moves along world -Y.
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	m = next.(Model)
	if math.Abs(m.Cam.X) > tol {
		t.Errorf("pan right at 90°: expected X unchanged, got %v", m.Cam.X)
	}
	if got := m.Cam.Y; math.Abs(got-panStep) > tol {
		t.Errorf("pan right at 90°: expected Y=%v, got %v", float64(panStep), got)
	}
}

func TestKeyLabelToggle(t *testing.T) {
	m := sized(120, 40)
	before := m.Vis.Labels
	next, _ := m.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	m = next.(Model)
	if m.Vis.Labels == before {
		t.Errorf("labels did not toggle from %v", before)
	}
}

// ── mouse ──

func TestWheelZoomKeepsCursorPointFixed(t *testing.T) {
	m := sized(120, 40)
	m.Cam.X, m.Cam.Y = 10, 20
	m.Cam.Angle = 0.3

	sx, sy := 12.0, 7.0
	wx, wy := m.canvasCam().ToWorld(sx, sy)

	m = m.zoomAt(sx, sy, zoomStep)

	if got := m.Cam.Zoom; math.Abs(got-1.25) > tol {
		t.Fatalf("zoom: expected 1.25, got %v", got)
	}
	nx, ny := m.canvasCam().ToWorld(sx, sy)
	if math.Abs(nx-wx) > tol || math.Abs(ny-wy) > tol {
		t.Errorf("world point under cursor moved: (%v,%v) -> (%v,%v)", wx, wy, nx, ny)
	}
}

func TestDragPanAnchorsGrabbedPoint(t *testing.T) {
	m := sized(120, 40)
	r := m.canvasRect()

	press := tea.MouseClickMsg{X: r.Min.X + 30, Y: r.Min.Y + 10, Button: tea.MouseLeft}
	m, _ = handleMouse(m, press, r)
	if !m.Dragging {
		t.Fatal("expected drag to start on left click")
	}

	move := tea.MouseMotionMsg{X: r.Min.X + 35, Y: r.Min.Y + 12, Button: tea.MouseLeft}
	m, _ = handleMouse(m, move, r)

	// The grabbed world point must now sit under the new cursor position.
	wx, wy := m.canvasCam().ToWorld(35, 12)
	if math.Abs(wx-m.GrabX) > tol || math.Abs(wy-m.GrabY) > tol {
		t.Errorf("grabbed point (%v,%v) not under cursor, world there is (%v,%v)",
			m.GrabX, m.GrabY, wx, wy)
	}

	release := tea.MouseReleaseMsg{X: r.Min.X + 35, Y: r.Min.Y + 12, Button: tea.MouseLeft}
	m, _ = handleMouse(m, release, r)
	if m.Dragging {
		t.Error("expected drag to end on release")
	}
}

func TestMouseOutsideCanvasIgnored(t *testing.T) {
	m := sized(120, 40)
	r := m.canvasRect()

	press := tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft} // toolbar row
	m, _ = handleMouse(m, press, r)
	if m.Dragging {
		t.Error("click on toolbar started a drag")
	}
}

// ── settings ──

func TestSettingsApply(t *testing.T) {
	m := sized(120, 40)
	next, _ := m.openSettings()
	m = next.(Model)
	if !m.SettingsOpen {
		t.Fatal("expected settings modal to open")
	}

	m.BaseInput.SetValue("64")
	m.SubdivInput.SetValue("5")
	m.IntervalInput.SetValue("")
	m = m.applySettings()

	if m.Vis.BaseSize != 64 {
		t.Errorf("base size: expected 64, got %v", m.Vis.BaseSize)
	}
	if m.Vis.Subdivisions != 5 {
		t.Errorf("subdivisions: expected 5, got %d", m.Vis.Subdivisions)
	}
	if m.Vis.Interval != 0 {
		t.Errorf("interval: expected auto (0), got %v", m.Vis.Interval)
	}
}

func TestSettingsRejectsInvalid(t *testing.T) {
	m := sized(120, 40)
	next, _ := m.openSettings()
	m = next.(Model)

	before := m.Vis
	m.BaseInput.SetValue("-3")
	m.SubdivInput.SetValue("1")
	m.IntervalInput.SetValue("nope")
	m = m.applySettings()

	if m.Vis != before {
		t.Errorf("invalid input changed visuals: %+v -> %+v", before, m.Vis)
	}
}
