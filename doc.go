// Package quadbez implements a quadratic Bézier segment engine with
// arc-length parameterization.
//
// A [Curve] is defined by three control points and evaluated at a natural
// parameter t, conventionally in [0, 1]. Equal increments of t do not
// correspond to equal increments of arc length, so the package maintains a
// second, normalized parameterization s ∈ [0, 1]: the fraction of total
// curve length traversed. [Curve.SAtT] and [Curve.TAtS] convert between
// the two.
//
// # Features
//
//   - Evaluation of position and tangent at any real t ([Curve.Eval],
//     [Curve.Derivative]); values outside [0, 1] extrapolate.
//   - Three-point interpolation: deriving the control point so the curve
//     passes exactly through a given middle point ([Curve.Interpolate]).
//   - Arc length by composite Legendre-Gauss quadrature ([Curve.LengthAt],
//     [Curve.TotalLength]).
//   - Inversion queries: length fraction to parameter ([Curve.TAtS]),
//     coordinate to parameter ([Curve.TAtX], [Curve.TAtY]), and coordinate
//     to coordinate ([Curve.XAtY], [Curve.YAtX]).
//
// Coordinate inversions are solved in closed form, as x(t) and y(t) are
// quadratic polynomials in t. The length inversion has no closed form and
// combines a cached monotonic sample table with ITP root refinement.
//
// # Mutability and caching
//
// A Curve is mutable: [Curve.FromObject] and [Curve.Interpolate] replace
// the control record atomically and invalidate the cached arc-length
// table, which is rebuilt lazily by the next length-dependent query.
// Concurrent read-only queries against an unchanging curve are safe;
// mutations must be serialized by the caller.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package quadbez
