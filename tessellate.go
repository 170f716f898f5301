package tessellate

import (
	"fmt"
	"math"

	"honnef.co/go/tessellate/curve"
)

// Result is the outcome of [Tessellate].
type Result struct {
	// The tessellated path.
	Path curve.Path
	// Indices of the segments that were classified as curved and replaced
	// by polylines, in increasing order.
	Curved []int
	// A human-readable summary, such as "2x curved segment(s)".
	Status string
}

// Status returns the summary for a tessellation that replaced n segments.
func Status(n int) string {
	return fmt.Sprintf("%dx curved segment(s)", n)
}

// TessellateSegment approximates seg by a polyline with divisions edges. The
// polyline's vertices are spaced evenly by arc length along seg, and its
// first and last vertex are exactly seg's start and end.
//
// An accuracy of 0 uses [curve.DefaultAccuracy].
func TessellateSegment(seg curve.Segment, divisions int, accuracy float64) (curve.Polyline, error) {
	if divisions < 1 {
		return nil, invalidf("division count %d, must be at least 1", divisions)
	}
	if accuracy < 0 || math.IsNaN(accuracy) {
		return nil, invalidf("accuracy %g", accuracy)
	}
	if accuracy == 0 {
		accuracy = curve.DefaultAccuracy
	}
	return tessellateSegment(seg, divisions, accuracy), nil
}

func tessellateSegment(seg curve.Segment, divisions int, accuracy float64) curve.Polyline {
	ts := curve.DivideByCount(seg, divisions, true, accuracy)
	out := make(curve.Polyline, len(ts))
	for i, t := range ts {
		out[i] = seg.Eval(t)
	}
	// Evaluating at t=0 and t=1 needn't reproduce the endpoints bit for bit,
	// as is the case for arcs.
	out[0] = seg.Start()
	out[len(out)-1] = seg.End()
	return out
}

// RebuildCurve replaces the segments at the indices in curved with polylines
// of divisions edges each, keeps all other segments unchanged, and joins the
// segments into a single path, using opts.Tolerance.
//
// If the segments don't form a single path, the error is a *[JoinError].
func RebuildCurve(segs []curve.Segment, curved []int, divisions int, opts Options) (curve.Path, error) {
	if divisions < 1 {
		return nil, invalidf("division count %d, must be at least 1", divisions)
	}
	if len(segs) == 0 {
		return nil, invalidf("no segments")
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	replace := make([]bool, len(segs))
	for _, i := range curved {
		if i < 0 || i >= len(segs) {
			return nil, invalidf("segment index %d out of range [0, %d)", i, len(segs))
		}
		replace[i] = true
	}

	pieces := make([]curve.Segment, len(segs))
	forEach(len(segs), opts.Workers, func(i int) {
		if replace[i] {
			pieces[i] = tessellateSegment(segs[i], divisions, opts.Accuracy)
		} else {
			pieces[i] = segs[i]
		}
	})

	paths := curve.Join(pieces, opts.Tolerance)
	if len(paths) != 1 {
		return nil, &JoinError{Pieces: len(paths), Tolerance: opts.Tolerance}
	}
	return paths[0], nil
}

// Tessellate classifies the segments of p and replaces the curved ones with
// polylines of divisions edges each. See [Classify] and [RebuildCurve].
//
// The segments of the resulting path are those of [curve.Path.Decompose],
// with curved ones replaced.
func Tessellate(p curve.Path, divisions int, opts Options) (Result, error) {
	if divisions < 1 {
		return Result{}, invalidf("division count %d, must be at least 1", divisions)
	}
	if err := validatePath(p); err != nil {
		return Result{}, err
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return Result{}, err
	}

	segs := p.Decompose()
	if len(segs) == 0 {
		return Result{}, invalidf("path has no segments")
	}
	curved, err := ClassifySegments(segs, opts)
	if err != nil {
		return Result{}, err
	}
	out, err := RebuildCurve(segs, curved, divisions, opts)
	if err != nil {
		Logger().Warn("tessellation failed", "segments", len(segs), "error", err)
		return Result{}, err
	}
	res := Result{
		Path:   out,
		Curved: curved,
		Status: Status(len(curved)),
	}
	Logger().Info(res.Status, "segments", len(segs), "divisions", divisions)
	return res, nil
}
