package scopeui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// Screen chrome heights and the right panel width. canvasRect and View
// must agree on these.
const (
	toolbarH   = 1
	footerH    = 1
	panelWidth = 30
)

// canvasRect computes the grid canvas region for coordinate transforms.
func (m Model) canvasRect() image.Rectangle {
	r := image.Rect(0, toolbarH, m.Width-panelWidth, m.Height-footerH)
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return image.Rectangle{}
	}
	return r
}

// panelRect computes the right info panel region.
func (m Model) panelRect() image.Rectangle {
	r := image.Rect(m.Width-panelWidth, toolbarH, m.Width, m.Height-footerH)
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return image.Rectangle{}
	}
	return r
}

// barLayer renders a full-width chrome row (toolbar or footer).
func barLayer(content string, width, y int, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(1).ID(id)
}

// fillLayer paints a region with the style's background.
func fillLayer(r image.Rectangle, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
}

// centeredLayer places a rendered box in the middle of the terminal at a
// high Z, for modal overlays.
func centeredLayer(rendered string, termW, termH int, id string) *lipgloss.Layer {
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := (termW - w) / 2
	cy := (termH - h) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID(id)
}
