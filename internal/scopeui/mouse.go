package scopeui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse processes mouse events and returns updated model + command.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	// Only process mouse events inside the canvas region
	if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		if _, ok := msg.(tea.MouseReleaseMsg); ok {
			m.Dragging = false
		}
		return m, nil
	}

	// Canvas-local screen coordinates
	sx := float64(mouse.X - canvasRect.Min.X)
	sy := float64(mouse.Y - canvasRect.Min.Y)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m.Dragging = true
			m.GrabX, m.GrabY = m.canvasCam().ToWorld(sx, sy)
		}

	case tea.MouseReleaseMsg:
		m.Dragging = false

	case tea.MouseMotionMsg:
		if m.Dragging {
			// Keep the grabbed world point under the cursor.
			wx, wy := m.canvasCam().ToWorld(sx, sy)
			m.Cam.X += m.GrabX - wx
			m.Cam.Y += m.GrabY - wy
		}

	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			m = m.zoomAt(sx, sy, zoomStep)
		case tea.MouseWheelDown:
			m = m.zoomAt(sx, sy, 1/zoomStep)
		}
	}

	return m, nil
}

// zoomAt scales the zoom by f while keeping the world point under the
// given canvas-local screen position fixed.
func (m Model) zoomAt(sx, sy, f float64) Model {
	wx, wy := m.canvasCam().ToWorld(sx, sy)
	m.Cam.Zoom = m.canvasCam().Zoom * f
	nx, ny := m.canvasCam().ToWorld(sx, sy)
	m.Cam.X += wx - nx
	m.Cam.Y += wy - ny
	return m
}
