package curve

import (
	"math"
)

// Arc is a circular arc in space.
//
// The arc lies in the plane spanned by XAxis and YAxis, which must be
// orthogonal unit vectors. The point at angle θ is
//
//	Center + Radius·cos(θ)·XAxis + Radius·sin(θ)·YAxis
//
// and the arc runs from StartAngle to StartAngle+SweepAngle. A negative sweep
// traverses the circle clockwise with respect to [Arc.Normal].
type Arc struct {
	Center     Point
	XAxis      Vec3
	YAxis      Vec3
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ ParametricCurve = Arc{}
var _ ArclenSolver = Arc{}

// NewCircle returns a full circle of the given radius around center, lying in
// the plane perpendicular to normal. The circle starts at an arbitrary point
// and runs anti-clockwise when looking down the normal.
func NewCircle(center Point, normal Vec3, radius float64) Arc {
	n := normal.Normalize()
	ref := Vec(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		ref = Vec(0, 1, 0)
	}
	x := ref.Sub(n.Mul(n.Dot(ref))).Normalize()
	return Arc{
		Center:     center,
		XAxis:      x,
		YAxis:      n.Cross(x),
		Radius:     radius,
		SweepAngle: 2 * math.Pi,
	}
}

// NewArcThroughPoints returns the arc that starts at p0, passes through p1
// and ends at p2. It returns false if the points are collinear or coincide.
func NewArcThroughPoints(p0, p1, p2 Point) (Arc, bool) {
	u := p1.Sub(p0)
	v := p2.Sub(p0)
	w := u.Cross(v)
	w2 := w.Hypot2()
	if !(w2 > 1e-24*u.Hypot2()*v.Hypot2()) {
		return Arc{}, false
	}
	// Circumcenter of the triangle p0, p1, p2.
	off := v.Mul(u.Hypot2()).Sub(u.Mul(v.Hypot2())).Cross(w).Div(2 * w2)
	center := p0.Translate(off)
	radius := off.Hypot()
	x := off.Negate().Div(radius)
	y := w.Normalize().Cross(x)

	d := p2.Sub(center)
	sweep := math.Atan2(d.Dot(y), d.Dot(x))
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		XAxis:      x,
		YAxis:      y,
		Radius:     radius,
		SweepAngle: sweep,
	}, true
}

// Normal returns the normal of the arc's plane.
func (a Arc) Normal() Vec3 {
	return a.XAxis.Cross(a.YAxis)
}

func (a Arc) point(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return a.Center.
		Translate(a.XAxis.Mul(a.Radius * cos)).
		Translate(a.YAxis.Mul(a.Radius * sin))
}

func (a Arc) Eval(t float64) Point {
	return a.point(a.StartAngle + t*a.SweepAngle)
}

func (a Arc) Deriv(t float64) Vec3 {
	sin, cos := math.Sincos(a.StartAngle + t*a.SweepAngle)
	f := a.SweepAngle * a.Radius
	return a.XAxis.Mul(-f * sin).Add(a.YAxis.Mul(f * cos))
}

func (a Arc) Start() Point {
	return a.Eval(0)
}

func (a Arc) End() Point {
	return a.Eval(1)
}

// Arclen returns the exact length of the arc. The accuracy is ignored.
func (a Arc) Arclen(accuracy float64) float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// SolveForArclen implements [ArclenSolver]. Arcs have constant speed, so the
// solution is exact.
func (a Arc) SolveForArclen(arclen float64, accuracy float64) float64 {
	total := a.Arclen(accuracy)
	if total == 0 {
		return 0
	}
	return min(max(arclen/total, 0), 1)
}

func (a Arc) Subsegment(t0, t1 float64) Arc {
	out := a
	out.StartAngle = a.StartAngle + t0*a.SweepAngle
	out.SweepAngle = (t1 - t0) * a.SweepAngle
	return out
}

func (a Arc) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return a.Subsegment(t0, t1)
}

// Reverse returns the same arc, traversed from its end to its start.
func (a Arc) Reverse() Arc {
	out := a
	out.StartAngle = a.StartAngle + a.SweepAngle
	out.SweepAngle = -a.SweepAngle
	return out
}

func (a Arc) Translate(v Vec3) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// Transform applies aff to the arc.
//
// The result is exact for similarity transforms. Other transforms would turn
// the arc into an elliptical one; instead, the axes are re-orthogonalized and
// the radius is scaled by the mean stretch of the two axes.
func (a Arc) Transform(aff Affine) Arc {
	x := a.XAxis.Transform(aff)
	y := a.YAxis.Transform(aff)
	out := a
	out.Center = a.Center.Transform(aff)
	if s, ok := aff.isSimilarity(); ok {
		out.Radius = a.Radius * s
		out.XAxis = x.Normalize()
		out.YAxis = y.Normalize()
		return out
	}
	out.Radius = a.Radius * 0.5 * (x.Hypot() + y.Hypot())
	out.XAxis = x.Normalize()
	out.YAxis = y.Sub(out.XAxis.Mul(out.XAxis.Dot(y))).Normalize()
	return out
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() || a.XAxis.IsInf() || a.YAxis.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.SweepAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() || a.XAxis.IsNaN() || a.YAxis.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}
