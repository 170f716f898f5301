package tessellate

import (
	"math"

	"honnef.co/go/tessellate/curve"
)

// Chords shorter than this, relative to the magnitude of the segment's
// coordinates, are treated as zero.
const degenerateChord = 1e-12

// Classify decomposes p into segments and returns the indices of the curved
// ones, in increasing order. Indices refer to the order of
// [curve.Path.Decompose].
func Classify(p curve.Path, opts Options) ([]int, error) {
	if err := validatePath(p); err != nil {
		return nil, err
	}
	return ClassifySegments(p.Decompose(), opts)
}

// ClassifySegments returns the indices of the curved segments in segs, in
// increasing order. Each segment is classified on its own, so the set of
// curved segments doesn't depend on their order.
func ClassifySegments(segs []curve.Segment, opts Options) ([]int, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	flags := make([]bool, len(segs))
	forEach(len(segs), opts.Workers, func(i int) {
		flags[i] = isCurved(segs[i], opts)
	})

	var out []int
	for i, curved := range flags {
		if curved {
			out = append(out, i)
		}
		Logger().Debug("classified segment", "index", i, "type", segmentType(segs[i]), "curved", curved)
	}
	return out, nil
}

// IsCurved reports whether seg's tangent deviates from its chord at any of
// the sample points. Segments whose start and end coincide are never curved.
func IsCurved(seg curve.Segment, opts Options) (bool, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return false, err
	}
	return isCurved(seg, opts), nil
}

func isCurved(seg curve.Segment, opts Options) bool {
	start, end := seg.Start(), seg.End()
	chord := end.Sub(start)
	if isDegenerate(chord, start, end) {
		return false
	}
	for _, t := range curve.DivideByCount(seg, opts.Samples+1, false, opts.Accuracy) {
		if curve.Tangent(seg, t).IsParallelTo(chord, opts.AngleTolerance) == curve.NotParallel {
			return true
		}
	}
	return false
}

func isDegenerate(chord curve.Vec3, start, end curve.Point) bool {
	scale := 1.0
	for _, v := range [...]float64{start.X, start.Y, start.Z, end.X, end.Y, end.Z} {
		scale = max(scale, math.Abs(v))
	}
	return chord.Hypot() <= degenerateChord*scale
}

func segmentType(seg curve.Segment) string {
	switch seg.(type) {
	case curve.Line:
		return "line"
	case curve.QuadBez:
		return "quad"
	case curve.CubicBez:
		return "cubic"
	case curve.Arc:
		return "arc"
	case curve.Polyline:
		return "polyline"
	default:
		return "unknown"
	}
}

func validatePath(p curve.Path) error {
	if len(p) == 0 {
		return invalidf("empty path")
	}
	for i, seg := range p {
		if seg == nil {
			return invalidf("segment %d is nil", i)
		}
		if seg.IsNaN() || seg.IsInf() {
			return invalidf("segment %d has non-finite coordinates", i)
		}
	}
	return nil
}
