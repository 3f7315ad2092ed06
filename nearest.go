package glyphed

import "math"

// Nearest-point-on-curve search. Each segment kind reports the parameter
// t in [0, 1] of the point closest to a query point, plus the squared
// distance to it. The editor's segment hit test compares squared distances
// across every segment of every path, so these routines avoid the final
// square root.

// Nearest returns the parameter and squared distance of the point on the
// line segment closest to p.
func (l Line) Nearest(p Point) (t, distSq float64) {
	d := l.P1.Sub(l.P0)
	lenSq := d.LengthSq()
	if lenSq == 0 {
		// Degenerate segment
		return 0, l.P0.DistanceSquared(p)
	}
	t = clampUnit(p.Sub(l.P0).Dot(d) / lenSq)
	return t, l.Eval(t).DistanceSquared(p)
}

// Nearest returns the parameter and squared distance of the point on the
// quadratic Bezier closest to p.
//
// The derivative of the squared distance is a cubic polynomial in t, so the
// interior candidates are found exactly with the cubic solver; the endpoints
// are always candidates as well.
func (q QuadBez) Nearest(p Point) (t, distSq float64) {
	// B(t) = a*t^2 + b*t + c with:
	a := q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0))
	b := q.P1.Sub(q.P0).Mul(2)
	d0 := q.P0.Sub(p)

	// d/dt |B(t) - p|^2 = 2 (B(t)-p) . B'(t), a cubic in t:
	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := b.Dot(b) + 2*a.Dot(d0)
	c0 := b.Dot(d0)

	t, distSq = 0, q.P0.DistanceSquared(p)
	if d := q.P2.DistanceSquared(p); d < distSq {
		t, distSq = 1, d
	}
	for _, root := range SolveCubicInUnitInterval(c3, c2, c1, c0) {
		if d := q.Eval(root).DistanceSquared(p); d < distSq {
			t, distSq = root, d
		}
	}
	return t, distSq
}

// Nearest returns the parameter and squared distance of the point on the
// cubic Bezier closest to p.
//
// The exact problem is a degree-5 polynomial, so the curve is sampled
// coarsely and the best sample is refined with Newton iterations on
// f(t) = (B(t)-p) . B'(t). The refined value is only accepted when it
// actually improves on the sampled minimum.
func (c CubicBez) Nearest(p Point) (t, distSq float64) {
	const samples = 16

	t, distSq = 0, c.P0.DistanceSquared(p)
	for i := 1; i <= samples; i++ {
		ti := float64(i) / samples
		if d := c.Eval(ti).DistanceSquared(p); d < distSq {
			t, distSq = ti, d
		}
	}

	deriv := c.Deriv()
	tr := t
	for i := 0; i < 8; i++ {
		diff := c.Eval(tr).Sub(p)
		d1 := asVec(deriv.Eval(tr))
		// B'' is the derivative of the quadratic B'.
		d2 := deriv.P1.Sub(deriv.P0).Lerp2(deriv.P2.Sub(deriv.P1), tr).Mul(2)

		f := diff.Dot(d1)
		df := d1.Dot(d1) + diff.Dot(d2)
		if df == 0 {
			break
		}
		next := clampUnit(tr - f/df)
		if math.Abs(next-tr) < 1e-12 {
			tr = next
			break
		}
		tr = next
	}
	if d := c.Eval(tr).DistanceSquared(p); d < distSq {
		t, distSq = tr, d
	}
	return t, distSq
}

// Lerp2 interpolates between two vectors.
func (v Vec2) Lerp2(w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// asVec reinterprets a point as a displacement from the origin. Used where
// a curve evaluation yields a derivative value rather than a position.
func asVec(p Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
