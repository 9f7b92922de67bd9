package quadbez

// interpClamp keeps the chord-length parameter away from the ends of the
// interval, where the control-point solve divides by 2(1−t)t.
const interpClamp = 1e-6

// ChordParameter returns the parameter at which a curve through a, m, b
// should hit the middle point m, chosen as the normalized chord-length
// fraction |m−a| / (|m−a| + |b−m|), clamped away from {0, 1}.
//
// The chord-length choice is a heuristic, not a universal truth: equal
// parameter increments do not imply equal arc-length increments, so any
// t in (0, 1) would yield some interpolating curve. Chord length is the
// conventional pick because it roughly tracks arc length for gentle
// curves.
//
// Returns 0 when all three points coincide; [Curve.Interpolate] reports
// that case as an error.
func ChordParameter(a, m, b Point) float64 {
	ca := m.Distance(a)
	cb := b.Distance(m)
	total := ca + cb
	if total == 0.0 {
		return 0.0
	}
	return min(max(ca/total, interpClamp), 1.0-interpClamp)
}

// Interpolate replaces the curve with the quadratic through the three
// ordered points a, m, b: endpoints a and b, with the control point
// solved in closed form so that B(tMid) = m at the chord-length
// parameter tMid (see [ChordParameter]):
//
//	p1 = (m − (1−tMid)² a − tMid² b) / (2 (1−tMid) tMid)
//
// It returns [ErrDegenerateInterpolation] if the three points coincide
// and [ErrInvalidGeometry] if any input coordinate is non-finite. In
// both cases the prior geometry is retained.
func (c *Curve) Interpolate(a, m, b Point) error {
	if !a.isFinite() || !m.isFinite() || !b.isFinite() {
		return ErrInvalidGeometry
	}
	if a == m && m == b {
		return ErrDegenerateInterpolation
	}
	tm := ChordParameter(a, m, b)
	mt := 1.0 - tm
	den := 2.0 * mt * tm
	p1 := Pt(
		(m.X-mt*mt*a.X-tm*tm*b.X)/den,
		(m.Y-mt*mt*a.Y-tm*tm*b.Y)/den,
	)
	c.p0, c.p1, c.p2 = a, p1, b
	c.invalidate()
	return nil
}
