package gridlines

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Visuals configures grid appearance. Build one from DefaultVisuals and
// override fields, or fill a partial struct and pass it through Normalize.
// Subdivisions below 2 degenerates the LOD rule and is a caller error.
type Visuals struct {
	// BaseSize is the world-unit length of the coarsest subdivision cell.
	BaseSize float64
	// Subdivisions is the branching factor between LOD levels.
	Subdivisions int
	// Interval, when positive, pins the minor interval and disables
	// automatic LOD entirely.
	Interval float64

	BaseColor  color.RGBA
	XAxisColor color.RGBA
	YAxisColor color.RGBA

	// Labels draws "x=…" / "y=…" coordinate labels where grid lines meet
	// the viewport edge.
	Labels bool
	// Fade in [0,1] dims minor lines relative to major ones.
	Fade float64
}

// DefaultVisuals returns the stock grid appearance: 256-unit base cells,
// 4 subdivisions, light gray lines with red/green axes, labels on.
func DefaultVisuals() Visuals {
	return Visuals{
		BaseSize:     256,
		Subdivisions: 4,
		BaseColor:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
		XAxisColor:   color.RGBA{R: 255, A: 255},
		YAxisColor:   color.RGBA{G: 255, A: 255},
		Labels:       true,
		Fade:         0.5,
	}
}

// Normalize fills zero fields with defaults. Labels is left alone: false is
// a valid setting and indistinguishable from unset.
func (v Visuals) Normalize() Visuals {
	d := DefaultVisuals()
	if v.BaseSize == 0 {
		v.BaseSize = d.BaseSize
	}
	if v.Subdivisions == 0 {
		v.Subdivisions = d.Subdivisions
	}
	var zero color.RGBA
	if v.BaseColor == zero {
		v.BaseColor = d.BaseColor
	}
	if v.XAxisColor == zero {
		v.XAxisColor = d.XAxisColor
	}
	if v.YAxisColor == zero {
		v.YAxisColor = d.YAxisColor
	}
	if v.Fade == 0 {
		v.Fade = d.Fade
	}
	return v
}

// fade blends c toward black by 1-f, preserving alpha. f=1 is the original
// color, f=0 is black.
func fade(c color.RGBA, f float64) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := cf.BlendRgb(colorful.Color{}, 1-f).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}
