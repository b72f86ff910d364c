package gridlines

import "github.com/wesen/gridscope/pkg/scenecam"

// Grid bundles a caller-owned camera with a visual configuration and
// forwards to the free functions. Pure convenience: callers that already
// hold the two values can use the package functions directly.
type Grid struct {
	Cam *scenecam.State
	Vis Visuals
}

// New returns a Grid over the given camera. The camera stays caller-owned
// and mutable; the grid reads it at call time.
func New(cam *scenecam.State, vis Visuals) *Grid {
	return &Grid{Cam: cam, Vis: vis.Normalize()}
}

func (g *Grid) ToWorld(sx, sy float64) (float64, float64)  { return g.Cam.ToWorld(sx, sy) }
func (g *Grid) ToScreen(wx, wy float64) (float64, float64) { return g.Cam.ToScreen(wx, wy) }
func (g *Grid) Visible() scenecam.Rect                     { return g.Cam.Visible() }
func (g *Grid) Corners() [4]scenecam.Point                 { return g.Cam.Corners() }

func (g *Grid) MinorInterval() float64 { return g.Vis.MinorInterval(g.Cam.Zoom) }
func (g *Grid) MajorInterval() float64 { return g.Vis.MajorInterval(g.Cam.Zoom) }

// Draw renders the grid through cv with the bundled camera and visuals.
func (g *Grid) Draw(cv Canvas) { Draw(cv, *g.Cam, g.Vis) }
