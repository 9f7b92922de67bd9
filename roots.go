package quadbez

import "math"

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0, in increasing
// order.
//
// This function tries to be quite numerically robust. If the equation is
// nearly linear, it will return the root ignoring the quadratic term; the
// other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of x satisfy the
// equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	finite := func(x float64) bool {
		return !math.IsInf(x, 0) && !math.IsNaN(x)
	}
	sc0 := c0 / c2
	sc1 := c1 / c2
	if !finite(sc0) || !finite(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if finite(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// solveITP finds a zero crossing of f within [a, b] using the ITP method,
// as described in the paper "An Enhancement of the Bisection Method
// Average Performance Preserving Minmax Optimality". ITP interleaves
// interpolation and truncation steps with bisection, so it is never worse
// than bisection by more than one iteration while typically converging
// much faster on smooth functions.
//
// ya and yb are f(a) and f(b), passed in because callers usually know
// them already. The bracket must satisfy ya ≤ 0 ≤ yb; if it does not
// (degenerate geometry can produce a flat or inconsistent bracket), the
// bracket midpoint is returned as the best available approximation.
// maxIter caps the iteration count the same way: on hitting the cap, the
// current bracket midpoint is returned. The k2 tuning parameter is
// hardwired to 2 and k1 to 0.2/(b−a), values that test well for curve
// problems.
func solveITP(f func(float64) float64, a, b, epsilon float64, maxIter int, ya, yb float64) float64 {
	if ya > 0.0 || yb < 0.0 {
		return 0.5 * (a + b)
	}
	if ya == 0.0 {
		return a
	}
	if yb == 0.0 {
		return b
	}
	const n0 = 1
	k1 := 0.2 / (b - a)
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	scaledEpsilon := epsilon * float64(uint64(1)<<(n0+n1_2))
	for iter := 0; iter < maxIter && b-a > 2.0*epsilon; iter++ {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// polyCoefficients rewrites one coordinate's Bézier form as power-basis
// polynomial coefficients: k0 + k1 t + k2 t².
func polyCoefficients(x0, x1, x2 float64) (k0, k1, k2 float64) {
	return x0, 2.0 * (x1 - x0), x2 - 2.0*x1 + x0
}

// rootBoundary is the tolerance for accepting roots that land just
// outside [0, 1] from rounding; accepted roots are clamped back in.
const rootBoundary = 1e-9

// clampRoots filters roots to the curve's valid parameter domain [0, 1].
// Roots outside it correspond to points on the extrapolated curve only
// and are discarded.
func clampRoots(roots [2]float64, n int) ([2]float64, int) {
	var out [2]float64
	var outN int
	for _, t := range roots[:n] {
		if t >= -rootBoundary && t <= 1.0+rootBoundary {
			out[outN] = min(max(t, 0.0), 1.0)
			outN++
		}
	}
	return out, outN
}

// TAtX returns the parameters in [0, 1] at which the curve's x coordinate
// equals x, in increasing order. Since x(t) is a quadratic in t, there
// are zero, one, or two such parameters: two when the curve doubles back
// across x, none when it never reaches it. An empty result is not an
// error.
func (c *Curve) TAtX(x float64) ([2]float64, int) {
	k0, k1, k2 := polyCoefficients(c.p0.X, c.p1.X, c.p2.X)
	roots, n := SolveQuadratic(k0-x, k1, k2)
	return clampRoots(roots, n)
}

// TAtY returns the parameters in [0, 1] at which the curve's y coordinate
// equals y, in increasing order. See [Curve.TAtX].
func (c *Curve) TAtY(y float64) ([2]float64, int) {
	k0, k1, k2 := polyCoefficients(c.p0.Y, c.p1.Y, c.p2.Y)
	roots, n := SolveQuadratic(k0-y, k1, k2)
	return clampRoots(roots, n)
}

// YAtX returns the y coordinates of the curve at the points where its x
// coordinate equals x, ordered by parameter.
func (c *Curve) YAtX(x float64) ([2]float64, int) {
	roots, n := c.TAtX(x)
	var out [2]float64
	for i, t := range roots[:n] {
		out[i] = c.Y(t)
	}
	return out, n
}

// XAtY returns the x coordinates of the curve at the points where its y
// coordinate equals y, ordered by parameter.
func (c *Curve) XAtY(y float64) ([2]float64, int) {
	roots, n := c.TAtY(y)
	var out [2]float64
	for i, t := range roots[:n] {
		out[i] = c.X(t)
	}
	return out, n
}
