package curve

import (
	"iter"
	"math"
)

// Polyline is a chain of straight edges through its vertices.
//
// As a [ParametricCurve], a polyline is parametrized by vertex index: t=0 is
// the first vertex, t=1 the last one, and vertex i sits at t=i/(n-1). A
// polyline needs at least two vertices to be a curve.
type Polyline []Point

var _ ParametricCurve = Polyline{}
var _ ArclenSolver = Polyline{}

// edge returns the index of the edge containing t, and t mapped to that
// edge's own parameter range.
func (p Polyline) edge(t float64) (int, float64) {
	n := len(p) - 1
	s := min(max(t, 0), 1) * float64(n)
	i := min(int(math.Floor(s)), n-1)
	return i, s - float64(i)
}

func (p Polyline) Eval(t float64) Point {
	switch len(p) {
	case 0:
		return Point{}
	case 1:
		return p[0]
	}
	i, u := p.edge(t)
	return p[i].Lerp(p[i+1], u)
}

// Deriv returns the derivative with respect to the polyline's parameter. At
// interior vertices, the derivative of the following edge is returned.
func (p Polyline) Deriv(t float64) Vec3 {
	if len(p) < 2 {
		return Vec3{}
	}
	i, _ := p.edge(t)
	return p[i+1].Sub(p[i]).Mul(float64(len(p) - 1))
}

func (p Polyline) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0]
}

func (p Polyline) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

// Lines returns an iterator over the polyline's edges.
func (p Polyline) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Arclen returns the total length of the polyline's edges. The accuracy is
// ignored.
func (p Polyline) Arclen(accuracy float64) float64 {
	var sum float64
	for l := range p.Lines() {
		sum += l.Length()
	}
	return sum
}

// SolveForArclen implements [ArclenSolver] exactly, by walking the edges.
func (p Polyline) SolveForArclen(arclen float64, accuracy float64) float64 {
	if len(p) < 2 || arclen <= 0 {
		return 0
	}
	n := float64(len(p) - 1)
	var acc float64
	i := 0
	for l := range p.Lines() {
		length := l.Length()
		if acc+length >= arclen && length > 0 {
			return (float64(i) + (arclen-acc)/length) / n
		}
		acc += length
		i++
	}
	return 1
}

func (p Polyline) Subsegment(t0, t1 float64) Polyline {
	if len(p) < 2 {
		return append(Polyline(nil), p...)
	}
	if t0 > t1 {
		return p.Subsegment(t1, t0).Reverse()
	}
	i0, _ := p.edge(t0)
	i1, u1 := p.edge(t1)
	out := Polyline{p.Eval(t0)}
	for i := i0 + 1; i <= i1; i++ {
		out = append(out, p[i])
	}
	if u1 > 0 || len(out) == 1 {
		out = append(out, p.Eval(t1))
	}
	return out
}

func (p Polyline) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return p.Subsegment(t0, t1)
}

// Nearest returns the squared distance between pt and the closest point on
// the polyline, as well as the parameter of that closest point.
func (p Polyline) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch len(p) {
	case 0:
		return math.Inf(1), 0
	case 1:
		return pt.DistanceSquared(p[0]), 0
	}
	n := float64(len(p) - 1)
	var best option[float64]
	i := 0
	for l := range p.Lines() {
		d, lt := l.Nearest(pt, accuracy)
		if !best.isSet || d < best.value {
			best.set(d)
			t = (float64(i) + lt) / n
		}
		i++
	}
	return best.value, t
}

// Reverse returns a new polyline with the vertices in reverse order.
func (p Polyline) Reverse() Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func (p Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

func (p Polyline) IsInf() bool {
	for _, pt := range p {
		if pt.IsInf() {
			return true
		}
	}
	return false
}

func (p Polyline) IsNaN() bool {
	for _, pt := range p {
		if pt.IsNaN() {
			return true
		}
	}
	return false
}
