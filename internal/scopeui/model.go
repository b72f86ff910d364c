// Package scopeui is the terminal grid viewer: a Bubbletea v2 application
// that pans, zooms and rotates a camera over an infinite reference grid
// rendered into a cell canvas.
package scopeui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/gridscope/pkg/gridlines"
	"github.com/wesen/gridscope/pkg/scenecam"
)

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	// Cam is kept un-normalized; the canvas viewport is applied per frame
	// because the layout can change under the camera.
	Cam scenecam.State
	Vis gridlines.Visuals

	// Drag state: the world point grabbed on press stays under the cursor.
	Dragging     bool
	GrabX, GrabY float64

	// Settings modal state
	SettingsOpen  bool
	SettingsFocus int // 0=base size, 1=subdivisions, 2=interval
	BaseInput     textinput.Model
	SubdivInput   textinput.Model
	IntervalInput textinput.Model
}

// NewModel creates the initial model: camera at the origin, terminal-tuned
// grid visuals.
func NewModel() Model {
	return Model{
		Cam: scenecam.State{Zoom: 1},
		Vis: termVisuals(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
