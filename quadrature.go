package quadbez

import "math"

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs3 = [...][2]float64{
	{0.8888888888888888, 0.0000000000000000},
	{0.5555555555555556, -0.7745966692414834},
	{0.5555555555555556, 0.7745966692414834},
}

var gaussLegendreCoeffs5 = [...][2]float64{
	{0.5688888888888889, 0.0000000000000000},
	{0.4786286704993665, -0.5384693101056831},
	{0.4786286704993665, 0.5384693101056831},
	{0.2369268850561891, -0.9061798459386640},
	{0.2369268850561891, 0.9061798459386640},
}

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

// gaussLegendreCoeffs selects the smallest table with at least order
// nodes; requests beyond 8 get the 8-node table.
func gaussLegendreCoeffs(order int) [][2]float64 {
	switch {
	case order <= 3:
		return gaussLegendreCoeffs3[:]
	case order <= 5:
		return gaussLegendreCoeffs5[:]
	default:
		return gaussLegendreCoeffs8[:]
	}
}

// gaussLegendre integrates f over [a, b] with a single application of the
// given quadrature rule. Each table row is a {weight, abscissa} pair on
// the reference interval [−1, 1].
func gaussLegendre(coeffs [][2]float64, f func(float64) float64, a, b float64) float64 {
	h := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	var sum float64
	for _, wx := range coeffs {
		sum += wx[0] * f(h*wx[1]+mid)
	}
	return h * sum
}

// LengthAt returns the arc length of the curve from parameter 0 to t,
//
//	∫₀ᵗ ‖B′(u)‖ du
//
// computed by composite Legendre-Gauss quadrature (the integral has no
// closed form in general). The result is nonnegative and non-decreasing
// in t; t at or below 0 yields 0, and t beyond 1 measures the
// extrapolated curve. The error is bounded by the configured quadrature
// order and subinterval count; no error estimate is returned.
func (c *Curve) LengthAt(t float64) float64 {
	if c.IsPoint() || t <= 0.0 || math.IsNaN(t) {
		return 0.0
	}
	coeffs := gaussLegendreCoeffs(c.opts.QuadratureOrder)
	// Subintervals configures the partition of [0, 1]; shorter and longer
	// ranges get a proportional share, never fewer than one piece.
	n := max(int(math.Ceil(float64(c.opts.Subintervals)*t)), 1)
	step := t / float64(n)
	var sum float64
	for i := 0; i < n; i++ {
		a := float64(i) * step
		sum += gaussLegendre(coeffs, c.Speed, a, a+step)
	}
	return sum
}

// TotalLength returns the arc length of the whole segment, LengthAt(1).
func (c *Curve) TotalLength() float64 {
	return c.LengthAt(1.0)
}
