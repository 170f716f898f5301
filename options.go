package tessellate

import (
	"math"

	"honnef.co/go/tessellate/curve"
)

const (
	// DefaultDivisions is the conventional number of divisions per curved
	// segment.
	DefaultDivisions = 5
	// DefaultSamples is the default number of tangent samples per segment
	// used by the classifier.
	DefaultSamples = 3
	// DefaultTolerance is the default distance within which segment endpoints
	// are considered coincident when joining.
	DefaultTolerance = 0.001
)

// Options specifies optional settings for classification and tessellation.
// The zero value is ready to use: every zero field takes its default value.
// Negative values are invalid.
type Options struct {
	// Number of interior points, spaced evenly by arc length, at which a
	// segment's tangent is compared to its chord. Defaults to
	// [DefaultSamples]. Curvature that changes faster than this sampling
	// density can go unnoticed.
	Samples int
	// Angular tolerance in radians for considering a tangent parallel to the
	// chord. Defaults to [curve.DefaultAngleTolerance].
	AngleTolerance float64
	// Distance within which adjacent segment endpoints are joined. Defaults
	// to [DefaultTolerance].
	Tolerance float64
	// Accuracy of arc length computations. Defaults to
	// [curve.DefaultAccuracy].
	Accuracy float64
	// Maximum number of goroutines used to process segments. Values of 0 and
	// 1 process segments sequentially. The result doesn't depend on the
	// number of workers.
	Workers int
}

func (opts Options) withDefaults() (Options, error) {
	if opts.Samples < 0 {
		return opts, invalidf("negative sample count %d", opts.Samples)
	}
	if opts.Workers < 0 {
		return opts, invalidf("negative worker count %d", opts.Workers)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"angle tolerance", opts.AngleTolerance},
		{"tolerance", opts.Tolerance},
		{"accuracy", opts.Accuracy},
	} {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return opts, invalidf("%s %g", f.name, f.v)
		}
	}

	if opts.Samples == 0 {
		opts.Samples = DefaultSamples
	}
	if opts.AngleTolerance == 0 {
		opts.AngleTolerance = curve.DefaultAngleTolerance
	}
	if opts.Tolerance == 0 {
		opts.Tolerance = DefaultTolerance
	}
	if opts.Accuracy == 0 {
		opts.Accuracy = curve.DefaultAccuracy
	}
	return opts, nil
}
