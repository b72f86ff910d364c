package scopeui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/gridscope/pkg/gridlines"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: blueprint-style dark viewer.
var (
	colorBG = color.RGBA{R: 7, G: 11, B: 18, A: 255}

	toolbarColor = c("#7fd4ff")
	footerColor  = c("#5a6a7a")
)

// termVisuals is the grid appearance tuned for terminal cells: the library
// default base size targets pixel surfaces and would put only one line on
// an 80-column screen.
func termVisuals() gridlines.Visuals {
	v := gridlines.DefaultVisuals()
	v.BaseSize = 16
	v.BaseColor = color.RGBA{R: 140, G: 170, B: 200, A: 255}
	v.XAxisColor = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	v.YAxisColor = color.RGBA{R: 90, G: 230, B: 120, A: 255}
	return v
}
