package gridlines

import "github.com/wesen/gridscope/pkg/scenecam"

// Intersect returns the intersection of the infinite lines through segments
// (p1,p2) and (p3,p4) by the determinant formula. ok is false when the
// determinant is exactly zero (parallel or degenerate input); there is no
// epsilon, so near-parallel lines may produce far-away points. That is
// accepted: the only caller places edge labels, and a label pushed off
// screen is harmless.
func Intersect(p1, p2, p3, p4 scenecam.Point) (pt scenecam.Point, ok bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if d == 0 {
		return scenecam.Point{}, false
	}
	a := p1.X*p2.Y - p1.Y*p2.X
	b := p3.X*p4.Y - p3.Y*p4.X
	return scenecam.Point{
		X: (a*(p3.X-p4.X) - (p1.X-p2.X)*b) / d,
		Y: (a*(p3.Y-p4.Y) - (p1.Y-p2.Y)*b) / d,
	}, true
}
