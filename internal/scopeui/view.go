package scopeui

import (
	"fmt"
	"image"
	"math"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/gridscope/pkg/cellcanvas"
	"github.com/wesen/gridscope/pkg/gridlines"
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0d1624")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	canvasRegion := m.canvasRect()
	panelRegion := m.panelRect()

	var layers []*lipgloss.Layer

	// Chrome backgrounds
	layers = append(layers,
		fillLayer(image.Rect(0, 0, m.Width, toolbarH), tbStyle, "toolbar-bg", 0),
		fillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		fillLayer(image.Rect(0, m.Height-footerH, m.Width, m.Height), ftStyle, "footer-bg", 0),
	)

	// Toolbar
	tbContent := " GRIDSCOPE  │  drag pan  wheel zoom  │  ←↑↓→ pan  +/- zoom  [r/R] rotate  [l]abels  [g]rid  [0] reset  [q]uit"
	layers = append(layers, barLayer(tbContent, m.Width, 0, tbStyle, "toolbar"))

	// Footer: camera readout + world position of the mouse cursor
	cam := m.canvasCam()
	vis := m.Vis.Normalize()
	mwx, mwy := cam.ToWorld(
		float64(m.MouseX-canvasRegion.Min.X),
		float64(m.MouseY-canvasRegion.Min.Y),
	)
	ftContent := fmt.Sprintf(
		" cam (%.1f, %.1f)  zoom %.3g  angle %.1f°  minor %g  mouse (%.1f, %.1f)",
		cam.X, cam.Y, cam.Zoom, cam.Angle*180/math.Pi,
		vis.MinorInterval(cam.Zoom), mwx, mwy,
	)
	layers = append(layers, barLayer(ftContent, m.Width, m.Height-footerH, ftStyle, "footer"))

	// Grid canvas
	layers = append(layers, m.buildCanvasLayer(canvasRegion))

	// Side panel
	if panelRegion.Dx() > 0 && panelRegion.Dy() > 0 {
		layers = append(layers, buildSeparatorLayer(panelRegion.Min.X-1, panelRegion.Min.Y, panelRegion.Dy()))
		layers = append(layers, fillLayer(panelRegion, panelLineStyle, "panel-bg", 0))
		layers = append(layers, m.buildPanelLayer(panelRegion))
	}

	// Settings modal
	if m.SettingsOpen {
		layers = append(layers, m.buildSettingsLayer())
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// buildCanvasLayer draws the grid into a cell buffer sized to the canvas
// region and wraps the rendered cells in a layer.
func (m Model) buildCanvasLayer(r image.Rectangle) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(1).ID("grid")
	}

	buf := cellcanvas.NewBuffer(w, h)
	cv := cellcanvas.New(buf)
	gridlines.Draw(cv, m.Cam, m.Vis)

	return lipgloss.NewLayer(buf.Render(colorBG)).X(r.Min.X).Y(r.Min.Y).Z(1).ID("grid")
}
