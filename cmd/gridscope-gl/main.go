// gridscope-gl is the pixel-surface twin of cmd/gridscope: the same
// infinite reference grid rendered with Ebitengine instead of terminal
// cells. Mouse drag pans, the wheel zooms at the cursor, Q/E rotate.
//
// Run: GOWORK=off go run ./cmd/gridscope-gl/
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wesen/gridscope/pkg/ebicanvas"
	"github.com/wesen/gridscope/pkg/gridlines"
	"github.com/wesen/gridscope/pkg/scenecam"
)

const (
	screenW = 1024
	screenH = 768

	panSpeed = 8 // screen px per tick while a pan key is held
	zoomStep = 1.1
	rotSpeed = math.Pi / 180
)

type game struct {
	cam scenecam.State
	vis gridlines.Visuals

	dragging     bool
	grabX, grabY float64
}

func newGame() *game {
	return &game{
		cam: scenecam.State{Zoom: 1},
		vis: gridlines.DefaultVisuals(),
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *game) handleKeys() {
	// Pan in screen directions, rotated into world space.
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panSpeed
	}
	if dx != 0 || dy != 0 {
		sin, cos := math.Sincos(g.cam.Angle)
		z := g.normCam().Zoom
		g.cam.X += (dx*cos - dy*sin) / z
		g.cam.Y += (dx*sin + dy*cos) / z
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.cam.Angle -= rotSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.cam.Angle += rotSpeed
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.vis.Labels = !g.vis.Labels
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.cam = scenecam.State{Zoom: 1}
	}
}

func (g *game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	// Drag pan: the world point grabbed on press stays under the cursor.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.grabX, g.grabY = g.normCam().ToWorld(sx, sy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		wx, wy := g.normCam().ToWorld(sx, sy)
		g.cam.X += g.grabX - wx
		g.cam.Y += g.grabY - wy
	}

	// Wheel zoom at the cursor.
	if _, wy := ebiten.Wheel(); wy != 0 {
		f := zoomStep
		if wy < 0 {
			f = 1 / zoomStep
		}
		px, py := g.normCam().ToWorld(sx, sy)
		g.cam.Zoom = g.normCam().Zoom * f
		nx, ny := g.normCam().ToWorld(sx, sy)
		g.cam.X += px - nx
		g.cam.Y += py - ny
	}
}

// normCam is the camera normalized to the fixed logical screen size.
func (g *game) normCam() scenecam.State {
	return g.cam.Normalize(screenW, screenH)
}

func (g *game) Draw(screen *ebiten.Image) {
	gridlines.Draw(ebicanvas.New(screen), g.cam, g.vis)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("gridscope")
	if err := ebiten.RunGame(newGame()); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
