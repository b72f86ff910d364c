package gridlines

import "math"

// MinorInterval returns the world-unit spacing of the finest grid lines at
// the given zoom. An explicit Interval override wins. Otherwise the LOD
// level L = ceil(log_Subdivisions(zoom)) selects BaseSize·Subdivisions^-L:
// each time zoom crosses a power of Subdivisions the interval divides once,
// keeping the on-screen spacing minor×zoom inside one factor-of-Subdivisions
// band around BaseSize at any zoom.
func (v Visuals) MinorInterval(zoom float64) float64 {
	if v.Interval > 0 {
		return v.Interval
	}
	sds := float64(v.Subdivisions)
	level := math.Ceil(math.Log(zoom) / math.Log(sds))
	return v.BaseSize * math.Pow(sds, -level)
}

// MajorInterval is the spacing of emphasized lines, always Subdivisions
// minor intervals.
func (v Visuals) MajorInterval(zoom float64) float64 {
	return float64(v.Subdivisions) * v.MinorInterval(zoom)
}
