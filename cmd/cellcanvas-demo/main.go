// cellcanvas-demo renders one grid frame to the terminal to visually
// verify that cellcanvas + gridlines + lipgloss styling works correctly:
// a rotated, zoomed-out camera near the origin, labels on.
//
// Run: GOWORK=off go run ./cmd/cellcanvas-demo/
package main

import (
	"fmt"
	"image/color"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/wesen/gridscope/pkg/cellcanvas"
	"github.com/wesen/gridscope/pkg/gridlines"
	"github.com/wesen/gridscope/pkg/scenecam"
)

func main() {
	cam := scenecam.State{
		X:     40,
		Y:     10,
		Zoom:  0.5,
		Angle: math.Pi / 10,
	}

	vis := gridlines.DefaultVisuals()
	vis.BaseSize = 32
	vis.BaseColor = color.RGBA{R: 120, G: 200, B: 160, A: 255}
	vis.XAxisColor = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	vis.YAxisColor = color.RGBA{R: 80, G: 255, B: 120, A: 255}

	buf := cellcanvas.NewBuffer(72, 26)
	gridlines.Draw(cellcanvas.New(buf), cam, vis)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7fd4ff")).
		Bold(true).
		Underline(true)

	fmt.Println()
	fmt.Println(title.Render("  cellcanvas visual demo: rotated grid, zoom 0.5"))
	fmt.Println()
	fmt.Println(buf.Render(color.RGBA{R: 8, G: 12, B: 18, A: 255}))
	fmt.Println()

	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fmt.Println(legend.Render("  green=Y axis  red=X axis  bright=major  dim=minor  □=origin"))
	fmt.Println()
}
