package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0, 0.0), Pt(1.0, 1.0, 1.0)}
	want := math.Sqrt(3.0)
	epsilon := 1e-9
	if d := l.Arclen(epsilon) - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	if ts := l.SolveForArclen(2*want, epsilon); ts != 1 {
		t.Errorf("got t = %g for arc length beyond the end, want 1", ts)
	}
}

func TestLineArclenDegenerate(t *testing.T) {
	l := Line{Pt(1, 2, 3), Pt(1, 2, 3)}
	if n := l.Arclen(1e-9); n != 0 {
		t.Errorf("got length %g, want 0", n)
	}
	if ts := l.SolveForArclen(1, 1e-9); ts != 0 {
		t.Errorf("got t = %g, want 0", ts)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0, 0.0), Pt(1.0, 1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, 0.0), Pt(math.Inf(1), 1.0, 0.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, math.Inf(-1)), Pt(0.0, 1.0, 0.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 0, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3, 4), 25, 0.5},
		{Pt(-3, 4, 0), 25, 0},
		{Pt(13, 0, 4), 25, 1},
		{Pt(2.5, 0, 0), 0, 0.25},
	}
	for _, tt := range tests {
		distSq, ts := l.Nearest(tt.pt, 1e-9)
		diff(t, []float64{tt.distSq, tt.t}, []float64{distSq, ts}, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestLineDeriv(t *testing.T) {
	l := Line{Pt(1, 2, 3), Pt(4, 6, 3)}
	for _, ts := range []float64{0, 0.5, 1} {
		diff(t, Vec(3, 4, 0), l.Deriv(ts))
	}
	diff(t, Vec(0.6, 0.8, 0), Tangent(l, 0.3), cmpopts.EquateApprox(0, 1e-12))
}
