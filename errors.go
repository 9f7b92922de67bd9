package quadbez

import "errors"

var (
	// ErrInvalidGeometry is returned when a mutation would introduce
	// non-finite control coordinates. The mutation is rejected and the
	// curve's prior state is retained.
	ErrInvalidGeometry = errors.New("quadbez: non-finite control coordinates")

	// ErrDegenerateInterpolation is returned by [Curve.Interpolate] when
	// all three input points coincide, so no chord-length parameter can be
	// chosen.
	ErrDegenerateInterpolation = errors.New("quadbez: interpolation points are coincident")

	// ErrOutOfRange is returned by [Curve.TAtS] when the normalized arc
	// length lies outside [0, 1].
	ErrOutOfRange = errors.New("quadbez: normalized arc length outside [0, 1]")
)
