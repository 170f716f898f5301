package curve

import (
	"iter"
	"math"
)

// Affine describes an affine transform of 3D space as a linear part M and a
// translation T.
//
// The resulting transformation represents this augmented matrix:
//
//	| M00 M01 M02 Tx |
//	| M10 M11 M12 Ty |
//	| M20 M21 M22 Tz |
//	|  0   0   0   1 |
//
// As with the [Wikipedia] formulation of affine transformations as augmented
// matrices, (A * B) * v == A * (B * v).
//
// [Wikipedia]: https://en.wikipedia.org/wiki/Affine_transformation
type Affine struct {
	M [3][3]float64
	T Vec3
}

// Identity is the identity transform.
var Identity = Affine{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scale(x, y, z float64) Affine {
	return Affine{M: [3][3]float64{{x, 0, 0}, {0, y, 0}, {0, 0, z}}}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec3) Affine {
	aff := Identity
	aff.T = v
	return aff
}

// Rotate creates an affine transform representing a rotation of th radians
// about axis, which passes through the origin.
//
// Rotation follows the right-hand rule: looking down the axis towards the
// origin, a positive angle rotates anti-clockwise. The axis needn't be
// normalized, but it must not be zero.
func Rotate(axis Vec3, th float64) Affine {
	// Rodrigues' rotation formula.
	k := axis.Normalize()
	sin, cos := math.Sincos(th)
	t := 1 - cos
	return Affine{M: [3][3]float64{
		{t*k.X*k.X + cos, t*k.X*k.Y - sin*k.Z, t*k.X*k.Z + sin*k.Y},
		{t*k.X*k.Y + sin*k.Z, t*k.Y*k.Y + cos, t*k.Y*k.Z - sin*k.X},
		{t*k.X*k.Z - sin*k.Y, t*k.Y*k.Z + sin*k.X, t*k.Z*k.Z + cos},
	}}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about the axis that passes through center.
//
// See [Rotate] for more info.
func RotateAbout(axis Vec3, th float64, center Point) Affine {
	c := Vec3(center)
	return Translate(c.Negate()).ThenRotate(axis, th).ThenTranslate(c)
}

func (aff Affine) Mul(o Affine) Affine {
	var out Affine
	for i := range 3 {
		for j := range 3 {
			out.M[i][j] = aff.M[i][0]*o.M[0][j] + aff.M[i][1]*o.M[1][j] + aff.M[i][2]*o.M[2][j]
		}
	}
	out.T = o.T.Transform(aff).Add(aff.T)
	return out
}

// ThenRotate creates aff followed by a rotation of th about axis.
//
// Equivalent to "Rotate(axis, th) * aff"
func (aff Affine) ThenRotate(axis Vec3, th float64) Affine {
	return Rotate(axis, th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y, z).
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec3) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec3) Affine {
	aff.T = aff.T.Add(v)
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	m := &aff.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	m := &aff.M
	invDet := 1 / aff.Determinant()
	var out Affine
	out.M[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out.M[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out.M[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out.M[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out.M[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out.M[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out.M[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out.M[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out.M[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	out.T = aff.T.Transform(out).Negate()
	return out
}

func (aff Affine) IsInf() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsInf(n, 0) {
				return true
			}
		}
	}
	return aff.T.IsInf()
}

func (aff Affine) IsNaN() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsNaN(n) {
				return true
			}
		}
	}
	return aff.T.IsNaN()
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec3 {
	return aff.T
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec3) Affine {
	aff.T = v
	return aff
}

// isSimilarity reports whether the linear part is a rotation, reflection and
// uniform scale, returning the scale factor.
func (aff Affine) isSimilarity() (float64, bool) {
	const epsilon = 1e-9
	cols := [3]Vec3{
		{aff.M[0][0], aff.M[1][0], aff.M[2][0]},
		{aff.M[0][1], aff.M[1][1], aff.M[2][1]},
		{aff.M[0][2], aff.M[1][2], aff.M[2][2]},
	}
	s := cols[0].Hypot()
	for i, c := range cols {
		if math.Abs(c.Hypot()-s) > epsilon*max(s, 1) {
			return 0, false
		}
		for _, o := range cols[i+1:] {
			if math.Abs(c.Dot(o)) > epsilon*max(s*s, 1) {
				return 0, false
			}
		}
	}
	return s, true
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
