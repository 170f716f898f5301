// Package tessellate selectively tessellates piecewise curves.
//
// A curve, represented as a [curve.Path], is decomposed into segments. Each
// segment is classified as either straight or curved: a segment is straight
// if its tangent, sampled at a few points spaced evenly by arc length, is
// parallel to its chord everywhere. Curved segments are replaced by polylines
// through points spaced evenly by arc length, straight segments are kept as
// they are, and the result is joined back into a single path.
//
// [Tessellate] performs all of these steps. [Classify], [TessellateSegment]
// and [RebuildCurve] expose the individual steps.
//
// # Errors
//
// Invalid arguments, such as an empty path or a division count smaller than
// one, result in errors wrapping [ErrInvalidInput]. If the rebuilt segments
// cannot be joined into a single path, the error is a *[JoinError], which
// wraps [ErrGeometry]. Segments of zero length aren't errors; they are
// classified as straight.
//
// # Logging
//
// By default, the package produces no log output. Use [SetLogger] to enable
// it.
package tessellate
