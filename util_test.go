package tessellate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/tessellate/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func quarterArc() curve.Arc {
	return curve.Arc{
		Center:     curve.Pt(0, 0, 0),
		XAxis:      curve.Vec(1, 0, 0),
		YAxis:      curve.Vec(0, 1, 0),
		Radius:     10,
		SweepAngle: math.Pi / 2,
	}
}

// chain returns a continuous path of n segments, cycling through lines,
// quadratic Béziers, arcs and cubic Béziers that wander through space.
func chain(n int) curve.Path {
	var out curve.Path
	cur := curve.Pt(0, 0, 0)
	for i := range n {
		f := float64(i)
		var seg curve.Segment
		switch i % 4 {
		case 0:
			seg = curve.Line{P0: cur, P1: cur.Translate(curve.Vec(1, 0.5, f*0.1))}
		case 1:
			seg = curve.QuadBez{P0: cur, P1: cur.Translate(curve.Vec(1, 2, 0)), P2: cur.Translate(curve.Vec(2, 0, 1))}
		case 2:
			a, ok := curve.NewArcThroughPoints(cur, cur.Translate(curve.Vec(1, 1, 0)), cur.Translate(curve.Vec(2, 0, 0.5)))
			if !ok {
				panic("collinear arc points")
			}
			seg = a
		case 3:
			seg = curve.CubicBez{
				P0: cur,
				P1: cur.Translate(curve.Vec(1, 0, 0)),
				P2: cur.Translate(curve.Vec(2, 1, -1)),
				P3: cur.Translate(curve.Vec(3, 1, 0)),
			}
		}
		out = append(out, seg)
		cur = seg.End()
	}
	return out
}
