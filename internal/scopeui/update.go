package scopeui

import (
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/gridscope/pkg/scenecam"
)

const (
	panStep  = 3 // screen cells per arrow press
	zoomStep = 1.25
	rotStep  = math.Pi / 24
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.SettingsOpen {
			return m.handleSettingsKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input outside the settings modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera panning. Arrow keys move in screen directions regardless of
	// camera rotation, so the screen delta is rotated into world space.
	case "up":
		m = m.panScreen(0, -panStep)
	case "down":
		m = m.panScreen(0, panStep)
	case "left":
		m = m.panScreen(-panStep, 0)
	case "right":
		m = m.panScreen(panStep, 0)

	// Zoom about the canvas center
	case "+", "=":
		m = m.zoomAtCenter(zoomStep)
	case "-", "_":
		m = m.zoomAtCenter(1 / zoomStep)

	case "r":
		m.Cam.Angle += rotStep
	case "R":
		m.Cam.Angle -= rotStep

	case "l":
		m.Vis.Labels = !m.Vis.Labels

	case "0":
		m.Cam = scenecam.State{Zoom: 1}

	case "g":
		return m.openSettings()
	}

	return m, nil
}

// panScreen moves the camera by a screen-space delta, expressed in world
// units through the current rotation and zoom.
func (m Model) panScreen(dx, dy float64) Model {
	sin, cos := math.Sincos(m.Cam.Angle)
	z := m.canvasCam().Zoom
	m.Cam.X += (dx*cos - dy*sin) / z
	m.Cam.Y += (dx*sin + dy*cos) / z
	return m
}

// zoomAtCenter scales the zoom by f. The camera position is the canvas
// center, so no translation compensation is needed.
func (m Model) zoomAtCenter(f float64) Model {
	m.Cam.Zoom = m.canvasCam().Zoom * f
	return m
}

// canvasCam returns the camera normalized to the current canvas region,
// with the viewport at the region origin (mouse math subtracts the region
// offset before converting).
func (m Model) canvasCam() scenecam.State {
	r := m.canvasRect()
	return m.Cam.Normalize(float64(r.Dx()), float64(r.Dy()))
}
