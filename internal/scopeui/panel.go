package scopeui

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// panelBG is slightly lighter than the canvas bg for visible distinction.
var panelBG = c("#121b29")

// Panel styles, all sharing the same background for consistency.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#7fd4ff")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#3a4a5e")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#9ab4ce")).
			Background(panelBG)

	panelNameStyle = lipgloss.NewStyle().
			Foreground(c("#d8a657")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#7fd4ff")).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1f2d40")).
			Background(panelBG)

	// panelLineStyle wraps padding with consistent background.
	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads and renders a line with consistent background to the given width.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	pad := width - vis
	if pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// buildPanelLayer renders the right info panel: a live camera/grid readout
// on top, key help below.
func (m Model) buildPanelLayer(r image.Rectangle) *lipgloss.Layer {
	width := r.Dx() - 2
	height := r.Dy()
	if width < 4 || height < 1 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(1).ID("panel")
	}

	cam := m.canvasCam()
	vis := m.Vis.Normalize()

	row := func(name string, format string, args ...any) string {
		return panelNameStyle.Render(fmt.Sprintf("  %-8s", name)) +
			panelValStyle.Render(fmt.Sprintf(format, args...))
	}

	labelState := "off"
	if vis.Labels {
		labelState = "on"
	}
	intervalState := "auto"
	if vis.Interval > 0 {
		intervalState = fmt.Sprintf("%g", vis.Interval)
	}

	lines := []string{
		panelTitleStyle.Render("◎ CAMERA"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		row("pos", "(%.2f, %.2f)", cam.X, cam.Y),
		row("zoom", "%.4g", cam.Zoom),
		row("angle", "%.2f rad", cam.Angle),
		"",
		panelTitleStyle.Render("▦ GRID"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		row("base", "%g", vis.BaseSize),
		row("subdiv", "%d", vis.Subdivisions),
		row("interval", "%s", intervalState),
		row("minor", "%g", vis.MinorInterval(cam.Zoom)),
		row("major", "%g", vis.MajorInterval(cam.Zoom)),
		row("labels", "%s", labelState),
		"",
		panelTitleStyle.Render("❓ HELP"),
		panelDimStyle.Render(strings.Repeat("─", width-2)),
		panelTextStyle.Render("  drag: pan"),
		panelTextStyle.Render("  wheel: zoom at cursor"),
		panelTextStyle.Render("  arrows: pan  +/-: zoom"),
		panelTextStyle.Render("  r/R: rotate  0: reset"),
		panelTextStyle.Render("  l: labels  g: grid cfg"),
		panelTextStyle.Render("  q: quit"),
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, l := range lines {
		lines[i] = padLine(l, width)
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewLayer(content).X(r.Min.X + 1).Y(r.Min.Y).Z(1).ID("panel")
}

// buildSeparatorLayer creates a vertical separator line.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	content := strings.Join(lines, "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("separator")
}
