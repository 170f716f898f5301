package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTextSingle(t *testing.T) {
	path := Path{
		CubicBez{
			Pt(10.0, 10.0, 0.0),
			Pt(20.0, 20.0, 0.0),
			Pt(30.0, 30.0, 1.0),
			Pt(40.0, 40.0, 1.0),
		},
	}
	want := "M10,10,0 C20,20,0 30,30,1 40,40,1"
	got := Text(path, TextOptions{})
	diff(t, want, got)
}

func TestTextTwoNoMove(t *testing.T) {
	path := Path{
		Line{Pt(0, 0, 0), Pt(10, 10, 0)},
		QuadBez{Pt(10, 10, 0), Pt(20, 10, 0), Pt(20, 0, 0)},
	}
	want := "M0,0,0 L10,10,0 Q20,10,0 20,0,0"
	got := Text(path, TextOptions{})
	diff(t, want, got)
}

func TestTextTwoMove(t *testing.T) {
	path := Path{
		Line{Pt(0, 0, 0), Pt(10, 10, 0)},
		Line{Pt(50, 50, 0), Pt(60, 60, 0)},
	}
	want := "M0,0,0 L10,10,0 M50,50,0 L60,60,0"
	got := Text(path, TextOptions{})
	diff(t, want, got)
}

func TestTextPrecision(t *testing.T) {
	path := Path{
		Polyline{Pt(0, 0, 0), Pt(1.0/3, -1e-9, 10), Pt(2.5, 100, -0.0001)},
		quarterArc(),
	}
	want := "M0,0,0 L0.333,0,10 L2.5,100,0 M10,0,0 A7.071,7.071,0 0,10,0"
	got := Text(path, TextOptions{MaxPrecision: 3})
	diff(t, want, got)
}

func TestTextFullCircle(t *testing.T) {
	c := NewCircle(Pt(0, 0, 0), Vec(0, 0, 1), 1)
	got := Text(Path{c}, TextOptions{MaxPrecision: 6})
	want := "M1,0,0 A0,1,0 -1,0,0 A0,-1,0 1,0,0"
	diff(t, want, got)

	p, err := ParseText(got)
	if err != nil {
		t.Fatal(err)
	}
	if n := p.Arclen(0); math.Abs(n-2*math.Pi) > 1e-5 {
		t.Errorf("got length %g, want 2π", n)
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"empty", "", nil},
		{"move only", "M1,2,3", nil},
		{
			"lines",
			"M0,0,0 L1,0,0 L1,1,0",
			Path{Line{Pt(0, 0, 0), Pt(1, 0, 0)}, Line{Pt(1, 0, 0), Pt(1, 1, 0)}},
		},
		{
			"implicit repeat",
			"M 0,0,0 1,0,0 L 1,1,0 2,1,0",
			Path{
				Line{Pt(0, 0, 0), Pt(1, 0, 0)},
				Line{Pt(1, 0, 0), Pt(1, 1, 0)},
				Line{Pt(1, 1, 0), Pt(2, 1, 0)},
			},
		},
		{
			"curves",
			"M0,0,0\nQ1,0,0 1,1,0\tC1,2,0 2,2,0 2,3,1e1",
			Path{
				QuadBez{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0)},
				CubicBez{Pt(1, 1, 0), Pt(1, 2, 0), Pt(2, 2, 0), Pt(2, 3, 10)},
			},
		},
		{
			"close",
			"M0,0,0 L1,0,0 L1,1,0 Z M5,5,5 L6,6,6",
			Path{
				Line{Pt(0, 0, 0), Pt(1, 0, 0)},
				Line{Pt(1, 0, 0), Pt(1, 1, 0)},
				Line{Pt(1, 1, 0), Pt(0, 0, 0)},
				Line{Pt(5, 5, 5), Pt(6, 6, 6)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseText(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestParseTextArc(t *testing.T) {
	p, err := ParseText("M10,0,0 A7.0710678118654755,7.0710678118654755,0 0,10,0")
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 {
		t.Fatalf("got %d segments, want 1", len(p))
	}
	a, ok := p[0].(Arc)
	if !ok {
		t.Fatalf("got %T, want Arc", p[0])
	}
	want := quarterArc()
	diff(t, want, a, cmpopts.EquateApprox(0, 1e-9))
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"L1,2,3", 1},
		{"1,2,3", 0},
		{"M1,2", 4},
		{"M1,2,x", 5},
		{"M1,2,3 X", 7},
		{"M1,2,3 L1,2,--3", 12},
		{"M0,0,0 A1,1,1 2,2,2", 8},
		{"M0,0,0 Z 1,1,1", 9},
	}
	for _, tt := range tests {
		_, err := ParseText(tt.in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: got error %v, want *SyntaxError", tt.in, err)
			continue
		}
		if serr.Offset != tt.offset {
			t.Errorf("%q: got offset %d, want %d (%s)", tt.in, serr.Offset, tt.offset, serr)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	path := Path{
		Line{Pt(10, -10, 0), Pt(10, 0, 0)},
		quarterArc(),
		CubicBez{Pt(0, 10, 0), Pt(-5, 10, 1), Pt(-10, 5, 2), Pt(-10, 0, 3)},
	}
	got, err := ParseText(Text(path, TextOptions{}))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, path, got, cmpopts.EquateApprox(0, 1e-9))
}
