package curve

import (
	"fmt"
	"math"
)

// DefaultAngleTolerance is the default angular tolerance, in radians, used
// when comparing directions. It is one degree, the customary default of CAD
// modelers.
const DefaultAngleTolerance = math.Pi / 180

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec returns the vector ⟨x, y, z⟩.
func Vec(x, y, z float64) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

// Splat returns the vector's x, y and z coordinates.
func (v Vec3) Splat() (float64, float64, float64) {
	return v.X, v.Y, v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the unsigned angle in radians between v and o, in the range
// [0, π]. It returns NaN if either vector has zero length.
func (v Vec3) Angle(o Vec3) float64 {
	// atan2 of |v×o| and v·o stays accurate for nearly parallel vectors,
	// where acos of the normalized dot product does not.
	ll := v.Hypot() * o.Hypot()
	if ll == 0 {
		return math.NaN()
	}
	return math.Atan2(v.Cross(o).Hypot(), v.Dot(o))
}

// Parallelism is the result of [Vec3.IsParallelTo].
type Parallelism int

const (
	// The vectors point in different directions, or one of them has zero
	// length.
	NotParallel Parallelism = 0
	// The vectors point in the same direction.
	Parallel Parallelism = 1
	// The vectors point in opposite directions.
	AntiParallel Parallelism = -1
)

func (p Parallelism) String() string {
	switch p {
	case NotParallel:
		return "NotParallel"
	case Parallel:
		return "Parallel"
	case AntiParallel:
		return "AntiParallel"
	default:
		return fmt.Sprintf("Parallelism(%d)", int(p))
	}
}

// IsParallelTo reports whether v and o are parallel within angleTolerance
// radians, either pointing the same way or opposite ways. Zero-length vectors
// are never parallel to anything.
func (v Vec3) IsParallelTo(o Vec3, angleTolerance float64) Parallelism {
	ll := v.Hypot() * o.Hypot()
	if !(ll > 0) || math.IsInf(ll, 0) {
		return NotParallel
	}
	cosAngle := v.Dot(o) / ll
	cosTol := math.Cos(angleTolerance)
	switch {
	case cosAngle >= cosTol:
		return Parallel
	case cosAngle <= -cosTol:
		return AntiParallel
	default:
		return NotParallel
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one of x, y and z is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

func (v Vec3) Div(f float64) Vec3 {
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Negate returns a new vector with the signs of x, y and z flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Transform applies the linear part of aff to v. Translation does not affect
// vectors.
func (v Vec3) Transform(aff Affine) Vec3 {
	return Vec3{
		X: aff.M[0][0]*v.X + aff.M[0][1]*v.Y + aff.M[0][2]*v.Z,
		Y: aff.M[1][0]*v.X + aff.M[1][1]*v.Y + aff.M[1][2]*v.Z,
		Z: aff.M[2][0]*v.X + aff.M[2][1]*v.Y + aff.M[2][2]*v.Z,
	}
}
