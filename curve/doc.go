// Package curve provides primitives and routines for piecewise curves in 3D
// space. It serves as the geometry layer of package tessellate, but it is
// intended to be general enough to be useful on its own.
//
// # Kurbo
//
// Much of this package follows the [kurbo] Rust crate, extended from the
// plane to space. Arc length computation, the inverse arc length solver and the
// Bézier primitives are direct descendants of kurbo's.
//
// # Segments, parametric curves, and paths
//
// [ParametricCurve] describes parametrized curves. These curves can be
// evaluated at t ∈ [0, 1] and return (x, y, z) points. The simplest parametric
// curve is the [Line], whose evaluation is a simple linear interpolation
// between its start and end points.
//
// [Arclener] is an interface implemented by curves that can compute their
// length, and [Deriver] by curves that can compute their first derivative.
// [ArclenSolver] is an optional interface implemented by curves that can
// efficiently solve for t given an arc length; [SolveForArclen] falls back to
// a numerical solver for all other curves.
//
// A [Segment] is all of the above. This package includes the following
// segments:
//   - [Line]
//   - [QuadBez]
//   - [CubicBez]
//   - [Arc]
//   - [Polyline]
//
// [Path] is an ordered sequence of segments. [Path.Segments] decomposes a
// path into atomic segments, and [Join] assembles loose segments into paths.
//
// # Directions
//
// [Tangent] computes the unit tangent of a curve, and [Vec3.IsParallelTo]
// compares directions within an angular tolerance, distinguishing vectors that
// point the same way from vectors that point opposite ways.
//
// # Text format
//
// Paths can be converted to and from a compact textual representation that
// resembles SVG path data. See [WriteText] and [ParseText].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [kurbo]: https://github.com/linebender/kurbo
package curve
