package tessellate

import (
	"math"

	"honnef.co/go/tessellate/curve"
)

// MaxDeviation estimates the largest distance between seg and approx, by
// measuring the distance from samples+1 points spaced evenly in seg's
// parameter space to the closest point on approx.
//
// It is used to judge how closely a tessellation follows the original
// segment.
func MaxDeviation(seg curve.Segment, approx curve.Polyline, samples int) float64 {
	samples = max(samples, 1)
	var out float64
	for i := range samples + 1 {
		distSq, _ := approx.Nearest(seg.Eval(float64(i)/float64(samples)), 0)
		out = max(out, distSq)
	}
	return math.Sqrt(out)
}
