package tessellate

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"honnef.co/go/tessellate/curve"
)

func TestClassifyStraight(t *testing.T) {
	tests := []struct {
		name string
		seg  curve.Segment
	}{
		{"line", curve.Line{P0: curve.Pt(0, 0, 0), P1: curve.Pt(1, 2, 3)}},
		{"collinear quad", curve.QuadBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(1, 1, 1), P2: curve.Pt(4, 4, 4)}},
		{"collinear cubic", curve.CubicBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(0, 0, 0), P2: curve.Pt(3, 0, 0), P3: curve.Pt(5, 0, 0)}},
		{"doubling back", curve.CubicBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(4, 0, 0), P2: curve.Pt(-2, 0, 0), P3: curve.Pt(1, 0, 0)}},
		{"straight polyline", curve.Polyline{curve.Pt(0, 0, 0), curve.Pt(1, 1, 0), curve.Pt(3, 3, 0)}},
		{"zero length", curve.Line{P0: curve.Pt(1, 1, 1), P1: curve.Pt(1, 1, 1)}},
		{"full circle", curve.NewCircle(curve.Pt(0, 0, 0), curve.Vec(0, 0, 1), 5)},
		{"closed cubic", curve.CubicBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(1, 1, 0), P2: curve.Pt(-1, 1, 0), P3: curve.Pt(0, 0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curved, err := IsCurved(tt.seg, Options{})
			if err != nil {
				t.Fatal(err)
			}
			if curved {
				t.Error("segment classified as curved")
			}
		})
	}
}

func TestClassifyCurved(t *testing.T) {
	tests := []struct {
		name string
		seg  curve.Segment
	}{
		{"arc", quarterArc()},
		{"reversed arc", quarterArc().Reverse()},
		{"quad", curve.QuadBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(1, 1, 0), P2: curve.Pt(2, 0, 0)}},
		{"spatial cubic", curve.CubicBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(1, 0, 1), P2: curve.Pt(2, 0, -1), P3: curve.Pt(3, 0, 0)}},
		{"bent polyline", curve.Polyline{curve.Pt(0, 0, 0), curve.Pt(1, 1, 0), curve.Pt(2, 0, 0)}},
		{"slight bend", curve.QuadBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(50, 2, 0), P2: curve.Pt(100, 0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curved, err := IsCurved(tt.seg, Options{})
			if err != nil {
				t.Fatal(err)
			}
			if !curved {
				t.Error("segment classified as straight")
			}
		})
	}
}

func TestClassifyAngleTolerance(t *testing.T) {
	// The tangent at the ends deviates from the chord by about 2.3°, and by
	// less in between.
	q := curve.QuadBez{P0: curve.Pt(0, 0, 0), P1: curve.Pt(50, 2, 0), P2: curve.Pt(100, 0, 0)}
	for _, tt := range []struct {
		tol  float64
		want bool
	}{
		{curve.DefaultAngleTolerance, true},
		{5 * math.Pi / 180, false},
	} {
		got, err := IsCurved(q, Options{AngleTolerance: tt.tol})
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("tolerance %g: got curved = %t, want %t", tt.tol, got, tt.want)
		}
	}
}

func TestClassifySampling(t *testing.T) {
	// The polyline only bends near a quarter of its length, which a single
	// sample at the midpoint misses.
	wiggle := curve.Polyline{
		curve.Pt(0, 0, 0),
		curve.Pt(0.8, 0, 0),
		curve.Pt(1, 0.05, 0),
		curve.Pt(1.2, 0, 0),
		curve.Pt(4, 0, 0),
	}
	for _, tt := range []struct {
		samples int
		want    bool
	}{
		{1, false},
		{3, true},
	} {
		got, err := IsCurved(wiggle, Options{Samples: tt.samples})
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%d samples: got curved = %t, want %t", tt.samples, got, tt.want)
		}
	}
}

func TestClassifyPath(t *testing.T) {
	p := curve.Path{
		curve.Line{P0: curve.Pt(10, -10, 0), P1: curve.Pt(10, 0, 0)},
		quarterArc(),
		curve.Polyline{curve.Pt(0, 10, 0), curve.Pt(-10, 10, 0), curve.Pt(-10, 20, 0)},
		curve.QuadBez{P0: curve.Pt(-10, 20, 0), P1: curve.Pt(-5, 25, 0), P2: curve.Pt(0, 20, 0)},
	}
	got, err := Classify(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	// The polyline decomposes into two lines, which shift the quad to
	// index 4.
	diff(t, []int{1, 4}, got)
}

func TestClassifyOrderInvariance(t *testing.T) {
	segs := chain(40).Decompose()
	want, err := ClassifySegments(segs, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(want) == 0 || len(want) == len(segs) {
		t.Fatalf("expected a mix of straight and curved segments, got %v", want)
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range 5 {
		perm := r.Perm(len(segs))
		shuffled := make([]curve.Segment, len(segs))
		for i, j := range perm {
			shuffled[i] = segs[j]
		}
		got, err := ClassifySegments(shuffled, Options{})
		if err != nil {
			t.Fatal(err)
		}
		curved := make([]bool, len(segs))
		for _, i := range got {
			curved[perm[i]] = true
		}
		var mapped []int
		for i, c := range curved {
			if c {
				mapped = append(mapped, i)
			}
		}
		diff(t, want, mapped)
	}

	for _, workers := range []int{2, 3, 16, 100} {
		got, err := ClassifySegments(segs, Options{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestClassifyAffineInvariance(t *testing.T) {
	p := chain(12)
	want, err := Classify(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, aff := range []curve.Affine{
		curve.Rotate(curve.Vec(1, 2, 3), 0.8),
		curve.Translate(curve.Vec(100, -50, 7)),
		curve.Scale(3, 3, 3),
		curve.Scale(-1, 1, 1),
	} {
		got, err := Classify(p.Transform(aff), Options{})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestClassifyInvalid(t *testing.T) {
	tests := []struct {
		name string
		p    curve.Path
		opts Options
	}{
		{"empty path", nil, Options{}},
		{"nil segment", curve.Path{nil}, Options{}},
		{"NaN", curve.Path{curve.Line{P0: curve.Pt(0, 0, 0), P1: curve.Pt(math.NaN(), 0, 0)}}, Options{}},
		{"Inf", curve.Path{curve.Line{P0: curve.Pt(0, math.Inf(1), 0), P1: curve.Pt(0, 0, 0)}}, Options{}},
		{"negative samples", chain(2), Options{Samples: -1}},
		{"negative tolerance", chain(2), Options{AngleTolerance: -0.1}},
		{"NaN accuracy", chain(2), Options{Accuracy: math.NaN()}},
		{"negative workers", chain(2), Options{Workers: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.p, tt.opts)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("got error %v, want ErrInvalidInput", err)
			}
		})
	}
}
