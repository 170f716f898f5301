package curve

import (
	"math"
)

// DivideByCount divides seg into count pieces of equal arc length and returns
// the parameters of the division points, in increasing order.
//
// With includeEnds, the result has count+1 parameters, starting with 0 and
// ending with 1. Without it, only the count-1 interior parameters are
// returned. A count smaller than 1 yields no parameters.
//
// Segments of zero or undefined length are divided uniformly in parameter
// space instead.
func DivideByCount(seg Segment, count int, includeEnds bool, accuracy float64) []float64 {
	if count < 1 {
		return nil
	}
	first, last := 1, count-1
	if includeEnds {
		first, last = 0, count
	}
	out := make([]float64, 0, max(last-first+1, 0))

	total := seg.Arclen(accuracy)
	uniform := !(total > 0) || math.IsInf(total, 0)
	for k := first; k <= last; k++ {
		switch {
		case k == 0:
			out = append(out, 0)
		case k == count:
			out = append(out, 1)
		case uniform:
			out = append(out, float64(k)/float64(count))
		default:
			out = append(out, SolveForArclen(seg, total*float64(k)/float64(count), accuracy))
		}
	}
	return out
}
