package curve

import (
	"iter"
	"slices"
)

// Path is a composite curve, a sequence of segments where each segment starts
// where the previous one ends.
//
// The segments of a path keep their own parametrization; a path has no single
// parameter of its own.
type Path []Segment

// Segments returns an iterator over the atomic segments of the path. Polylines
// are exploded into their edges, every other segment is yielded as is.
func (p Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range p {
			if pl, ok := seg.(Polyline); ok {
				for l := range pl.Lines() {
					if !yield(l) {
						return
					}
				}
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Decompose returns the atomic segments of the path, in order. See
// [Path.Segments].
func (p Path) Decompose() []Segment {
	return slices.Collect(p.Segments())
}

func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0].Start()
}

func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].End()
}

// Arclen returns the sum of the segments' arc lengths.
func (p Path) Arclen(accuracy float64) float64 {
	var sum float64
	for _, seg := range p {
		sum += seg.Arclen(accuracy)
	}
	return sum
}

// IsClosed reports whether the path ends within tolerance of where it starts.
func (p Path) IsClosed(tolerance float64) bool {
	return len(p) > 0 && p.Start().Distance(p.End()) <= tolerance
}

// IsContinuous reports whether every segment starts within tolerance of where
// the previous one ends.
func (p Path) IsContinuous(tolerance float64) bool {
	for i := 1; i < len(p); i++ {
		if p[i-1].End().Distance(p[i].Start()) > tolerance {
			return false
		}
	}
	return true
}

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = TransformSegment(seg, aff)
	}
	return out
}

func (p Path) IsInf() bool {
	for _, seg := range p {
		if seg.IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for _, seg := range p {
		if seg.IsNaN() {
			return true
		}
	}
	return false
}

// Join chains pieces, in order, into paths. A piece is appended to the
// current path if it starts within tolerance of where the path ends;
// otherwise it begins a new path. Pieces are never reordered or reversed.
//
// Joining no pieces returns no paths.
func Join(pieces []Segment, tolerance float64) []Path {
	var out []Path
	var cur Path
	for _, seg := range pieces {
		if len(cur) > 0 && cur.End().Distance(seg.Start()) > tolerance {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, seg)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
