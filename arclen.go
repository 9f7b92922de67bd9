package quadbez

import "sort"

// arcTable is the cached monotonic sample of the parameter→length
// mapping: ss[i] is the normalized arc length at ts[i]. It is built once
// per control-point version and owned by the curve; mutation discards it
// and the next inverse query rebuilds it lazily.
type arcTable struct {
	version uint64
	ts      []float64
	ss      []float64
	total   float64
}

func (c *Curve) arcTable() *arcTable {
	if c.table != nil && c.table.version == c.version {
		return c.table
	}
	n := c.opts.TableSize
	coeffs := gaussLegendreCoeffs(c.opts.QuadratureOrder)
	ts := make([]float64, n+1)
	ss := make([]float64, n+1)
	var acc float64
	for i := 1; i <= n; i++ {
		t0 := float64(i-1) / float64(n)
		t1 := float64(i) / float64(n)
		ts[i] = t1
		// Accumulating per-segment lengths keeps the table monotone by
		// construction: weights and speeds are nonnegative.
		acc += gaussLegendre(coeffs, c.Speed, t0, t1)
		ss[i] = acc
	}
	if acc > 0.0 {
		for i := range ss {
			ss[i] /= acc
		}
		ss[n] = 1.0
	}
	c.table = &arcTable{
		version: c.version,
		ts:      ts,
		ss:      ss,
		total:   acc,
	}
	return c.table
}

// SAtT returns the normalized arc length at parameter t: the fraction of
// total curve length traversed from 0 to t, in [0, 1]. It integrates
// fresh rather than interpolating the cached table, so arbitrary t get
// full query-time precision. A point curve yields 0 for every t.
func (c *Curve) SAtT(t float64) float64 {
	if c.IsPoint() {
		return 0.0
	}
	total := c.TotalLength()
	if total == 0.0 {
		return 0.0
	}
	return min(max(c.LengthAt(t)/total, 0.0), 1.0)
}

// TAtS returns the parameter at which the curve has traversed the
// normalized arc length s. s must be in [0, 1]; anything else (including
// NaN) fails with [ErrOutOfRange] — out-of-range input is rejected, not
// clamped.
//
// The parameter is found by bracketing s in the cached sample table and
// refining with ITP root-finding on f(t) = SAtT(t) − s until the bracket
// shrinks below the configured epsilon. Arc length is monotone in t, so
// refinement converges for any non-degenerate curve; if the iteration cap
// is reached first (degenerate geometry must not loop forever), the best
// bracket midpoint is returned rather than an error.
func (c *Curve) TAtS(s float64) (float64, error) {
	if !(s >= 0.0 && s <= 1.0) {
		return 0.0, ErrOutOfRange
	}
	if c.IsPoint() {
		return 0.0, nil
	}
	if s == 0.0 {
		return 0.0, nil
	}
	if s == 1.0 {
		return 1.0, nil
	}
	tbl := c.arcTable()
	if tbl.total == 0.0 {
		return 0.0, nil
	}
	i := sort.SearchFloat64s(tbl.ss, s)
	if i == 0 {
		return tbl.ts[0], nil
	}
	lo, hi := tbl.ts[i-1], tbl.ts[i]
	// The refinement function integrates fresh, so its values at the
	// bracket ends can differ from the table's by a hair; a bracket end
	// already past the target is its own answer.
	f := func(t float64) float64 { return c.SAtT(t) - s }
	flo := f(lo)
	if flo >= 0.0 {
		return lo, nil
	}
	fhi := f(hi)
	if fhi <= 0.0 {
		return hi, nil
	}
	t := solveITP(f, lo, hi, c.opts.Epsilon, c.opts.MaxIterations, flo, fhi)
	return t, nil
}
