package curve

import (
	"math"
	"testing"
)

func TestPathDecompose(t *testing.T) {
	arc := quarterArc()
	p := Path{
		Line{Pt(10, -10, 0), Pt(10, 0, 0)},
		arc,
		Polyline{Pt(0, 10, 0), Pt(-10, 10, 0), Pt(-10, 0, 0)},
	}
	want := []Segment{
		Line{Pt(10, -10, 0), Pt(10, 0, 0)},
		arc,
		Line{Pt(0, 10, 0), Pt(-10, 10, 0)},
		Line{Pt(-10, 10, 0), Pt(-10, 0, 0)},
	}
	diff(t, want, p.Decompose())
	if !p.IsContinuous(1e-9) {
		t.Error("path should be continuous")
	}
	if p.IsClosed(1e-9) {
		t.Error("path shouldn't be closed")
	}
	if got, want := p.Arclen(1e-9), 10+5*math.Pi+20; math.Abs(got-want) > 1e-9 {
		t.Errorf("got length %g, want %g", got, want)
	}
}

func TestJoin(t *testing.T) {
	a := Line{Pt(0, 0, 0), Pt(1, 0, 0)}
	b := Line{Pt(1, 0, 0), Pt(1, 1, 0)}
	bNear := Line{Pt(1.0005, 0, 0), Pt(1, 1, 0)}
	c := Line{Pt(5, 5, 5), Pt(6, 6, 6)}

	tests := []struct {
		name   string
		pieces []Segment
		want   []Path
	}{
		{"empty", nil, nil},
		{"single", []Segment{a}, []Path{{a}}},
		{"chain", []Segment{a, b}, []Path{{a, b}}},
		{"within tolerance", []Segment{a, bNear}, []Path{{a, bNear}}},
		{"gap", []Segment{a, c}, []Path{{a}, {c}}},
		{"gap then chain", []Segment{a, c, Line{c.P1, Pt(7, 7, 7)}}, []Path{{a}, {c, Line{c.P1, Pt(7, 7, 7)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, Join(tt.pieces, 0.001))
		})
	}
}
