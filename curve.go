package quadbez

import (
	"fmt"
)

// Defaults for the numeric configuration knobs in [Options].
const (
	DefaultQuadratureOrder = 5
	DefaultSubintervals    = 100
	DefaultTableSize       = 100
	DefaultEpsilon         = 1e-6
	DefaultMaxIterations   = 50
)

// Options configures a curve's numeric behavior. The zero value of each
// field selects its default, so Options{} is a valid configuration.
type Options struct {
	// QuadratureOrder is the number of Legendre-Gauss nodes applied per
	// subinterval. Supported node counts are 3, 5, and 8; other values
	// select the smallest table that covers the request.
	QuadratureOrder int

	// Subintervals is the number of uniform pieces [0, 1] is partitioned
	// into for composite quadrature.
	Subintervals int

	// TableSize is the number of samples in the cached parameter→length
	// table backing inverse length queries.
	TableSize int

	// Epsilon is the convergence tolerance for root refinement.
	Epsilon float64

	// MaxIterations caps root refinement. On hitting the cap the best
	// bracket midpoint is returned rather than an error.
	MaxIterations int
}

func (o Options) normalized() Options {
	if o.QuadratureOrder <= 0 {
		o.QuadratureOrder = DefaultQuadratureOrder
	}
	if o.Subintervals <= 0 {
		o.Subintervals = DefaultSubintervals
	}
	if o.TableSize <= 0 {
		o.TableSize = DefaultTableSize
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// ControlPoints is the exchange record for a curve's geometry: endpoints
// (X0, Y0) and (X1, Y1) with control point (CX, CY).
//
// CX2 and CY2 carry the control point a second time for consumers that
// use a two-handle representation. [Curve.FromObject] ignores them on
// input and [Curve.ToObject] re-mirrors them from (CX, CY), so the two
// handles cannot drift apart.
type ControlPoints struct {
	X0, Y0 float64
	CX, CY float64
	X1, Y1 float64

	CX2, CY2 float64
}

// Parametric describes a curve parametrized by a scalar t in [0, 1] that
// supports traversal by arc length. It is the degree-independent surface
// of this package; higher-degree segment types can implement it without
// sharing representation with [Curve].
type Parametric interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Derivative returns the tangent vector at parameter t.
	Derivative(t float64) Vec2
	// LengthAt returns the arc length from parameter 0 to t.
	LengthAt(t float64) float64
	// TAtS returns the parameter at normalized arc length s ∈ [0, 1].
	TAtS(s float64) (float64, error)
}

var _ Parametric = (*Curve)(nil)

// Curve is a single quadratic Bézier segment with endpoints p0 and p2 and
// control point p1.
//
// A Curve owns its control record exclusively. Mutations ([Curve.FromObject],
// [Curve.Interpolate]) replace the record atomically and invalidate the
// cached arc-length table; no partial update is ever observable. Queries
// do not mutate observable state and are safe to run concurrently as long
// as mutations are serialized by the caller.
type Curve struct {
	p0, p1, p2 Point
	opts       Options

	// version counts mutations; the cached table records the version it
	// was built against and is discarded on mismatch.
	version uint64
	table   *arcTable
}

// New returns a curve with default options. The control points are not
// validated; use [Curve.FromObject] to replace geometry with validation.
func New(p0, p1, p2 Point) *Curve {
	return NewWithOptions(p0, p1, p2, Options{})
}

// NewWithOptions returns a curve with the given numeric configuration.
func NewWithOptions(p0, p1, p2 Point, opts Options) *Curve {
	return &Curve{
		p0:   p0,
		p1:   p1,
		p2:   p2,
		opts: opts.normalized(),
	}
}

func (c *Curve) String() string {
	return fmt.Sprintf("Quad(%s, %s, %s)", c.p0, c.p1, c.p2)
}

func (c *Curve) invalidate() {
	c.version++
	c.table = nil
}

// FromObject replaces the curve's geometry with the six defining
// coordinates of cp. It returns [ErrInvalidGeometry] if any of them is
// NaN or infinite, in which case the prior geometry is retained.
func (c *Curve) FromObject(cp ControlPoints) error {
	p0 := Pt(cp.X0, cp.Y0)
	p1 := Pt(cp.CX, cp.CY)
	p2 := Pt(cp.X1, cp.Y1)
	if !p0.isFinite() || !p1.isFinite() || !p2.isFinite() {
		return ErrInvalidGeometry
	}
	c.p0, c.p1, c.p2 = p0, p1, p2
	c.invalidate()
	return nil
}

// ToObject returns the curve's control record. The legacy handle pair
// (CX2, CY2) is mirrored from the control point.
func (c *Curve) ToObject() ControlPoints {
	return ControlPoints{
		X0: c.p0.X, Y0: c.p0.Y,
		CX: c.p1.X, CY: c.p1.Y,
		X1: c.p2.X, Y1: c.p2.Y,
		CX2: c.p1.X, CY2: c.p1.Y,
	}
}

// Start returns the curve's first endpoint, B(0).
func (c *Curve) Start() Point {
	return c.p0
}

// End returns the curve's second endpoint, B(1).
func (c *Curve) End() Point {
	return c.p2
}

// IsPoint reports whether all three control points coincide, collapsing
// the curve to a single point. Length and inversion queries on a point
// curve return 0 without root-finding.
func (c *Curve) IsPoint() bool {
	return c.p0 == c.p1 && c.p1 == c.p2
}

// Eval evaluates the curve at parameter t:
//
//	B(t) = (1−t)² p0 + 2(1−t)t p1 + t² p2
//
// t is not clamped; values outside [0, 1] extrapolate along the same
// polynomial.
func (c *Curve) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.p0).Mul(mt * mt)
	b := Vec2(c.p1).Mul(mt * 2.0)
	d := b.Add(Vec2(c.p2).Mul(t))
	return Point(a.Add(d.Mul(t)))
}

// X returns the x coordinate of the curve at parameter t.
func (c *Curve) X(t float64) float64 {
	return c.Eval(t).X
}

// Y returns the y coordinate of the curve at parameter t.
func (c *Curve) Y(t float64) float64 {
	return c.Eval(t).Y
}

// Derivative returns the tangent vector at parameter t:
//
//	B′(t) = 2(1−t)(p1−p0) + 2t(p2−p1)
//
// For a point curve the result is the zero vector.
func (c *Curve) Derivative(t float64) Vec2 {
	d0 := c.p1.Sub(c.p0).Mul(2.0 * (1.0 - t))
	d1 := c.p2.Sub(c.p1).Mul(2.0 * t)
	return d0.Add(d1)
}

// XPrime returns the x component of the tangent at parameter t.
func (c *Curve) XPrime(t float64) float64 {
	return c.Derivative(t).X
}

// YPrime returns the y component of the tangent at parameter t.
func (c *Curve) YPrime(t float64) float64 {
	return c.Derivative(t).Y
}

// Speed returns ‖B′(t)‖, the integrand of the arc-length integral.
func (c *Curve) Speed(t float64) float64 {
	return c.Derivative(t).Hypot()
}

// Extrema returns the parameters of the curve's interior axis extrema in
// increasing order. A quadratic has at most one extremum per axis, so at
// most two are reported; endpoints do not count.
func (c *Curve) Extrema() ([2]float64, int) {
	// The extrema are the roots of the derivative, which is a line per
	// axis.
	var out [2]float64
	var n int
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[n] = t
			n++
		}
	}
	if dd.Y != 0.0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[n] = t
			n++
			if n == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, n
}

// Subsegment returns a new curve tracing the parameter range [t0, t1] of
// c. The result carries the same options and a fresh cache.
func (c *Curve) Subsegment(t0, t1 float64) *Curve {
	p0 := c.Eval(t0)
	p2 := c.Eval(t1)
	p1 := p0.Translate(c.p1.Sub(c.p0).Lerp(c.p2.Sub(c.p1), t0).Mul(t1 - t0))
	return NewWithOptions(p0, p1, p2, c.opts)
}
