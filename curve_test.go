package glyphed

import (
	"math"
	"testing"
)

func verifyRect(t *testing.T, got, want Rect, epsilon float64) {
	t.Helper()
	if !approxPoint(got.Min, want.Min, epsilon) || !approxPoint(got.Max, want.Max, epsilon) {
		t.Errorf("rect = %v, want %v", got, want)
	}
}

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		min    Point
		max    Point
	}{
		{"ordered", Pt(0, 0), Pt(10, 10), Pt(0, 0), Pt(10, 10)},
		{"swapped", Pt(10, 10), Pt(0, 0), Pt(0, 0), Pt(10, 10)},
		{"mixed", Pt(10, 0), Pt(0, 10), Pt(0, 0), Pt(10, 10)},
		{"degenerate", Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if r.Min != tt.min || r.Max != tt.max {
				t.Errorf("NewRect(%v, %v) = %v", tt.p1, tt.p2, r)
			}
		})
	}
}

func TestRect_Dimensions(t *testing.T) {
	r := NewRect(Pt(1, 2), Pt(5, 10))
	if r.Width() != 4 || r.Height() != 8 {
		t.Errorf("dimensions = %v x %v, want 4 x 8", r.Width(), r.Height())
	}
	if r.Center() != Pt(3, 6) {
		t.Errorf("Center = %v, want (3, 6)", r.Center())
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(Pt(0, 0), Pt(5, 5))
	b := NewRect(Pt(3, 3), Pt(10, 8))
	got := a.Union(b)
	want := NewRect(Pt(0, 0), Pt(10, 8))
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"center", Pt(5, 5), true},
		{"corner", Pt(0, 0), true},
		{"edge", Pt(10, 5), true},
		{"outside x", Pt(11, 5), false},
		{"outside y", Pt(5, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestLine_Eval(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(10, 20)}
	tests := []struct {
		t      float64
		expect Point
	}{
		{0, Pt(0, 0)},
		{1, Pt(10, 20)},
		{0.5, Pt(5, 10)},
		{0.25, Pt(2.5, 5)},
	}

	for _, tt := range tests {
		if got := l.Eval(tt.t); got != tt.expect {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expect)
		}
	}
	if l.Start() != l.P0 || l.End() != l.P1 {
		t.Error("Start/End disagree with P0/P1")
	}
}

func TestLine_BoundingBox(t *testing.T) {
	l := Line{P0: Pt(10, 0), P1: Pt(0, 10)}
	verifyRect(t, l.BoundingBox(), NewRect(Pt(0, 0), Pt(10, 10)), 0)
}

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}

	if got := q.Eval(0); got != q.P0 {
		t.Errorf("Eval(0) = %v, want P0", got)
	}
	if got := q.Eval(1); got != q.P2 {
		t.Errorf("Eval(1) = %v, want P2", got)
	}
	// Apex of the symmetric arch.
	if got := q.Eval(0.5); !approxPoint(got, Pt(50, 50), 1e-10) {
		t.Errorf("Eval(0.5) = %v, want (50, 50)", got)
	}
}

func TestQuadBez_SubdivideAt(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	left, right := q.SubdivideAt(0.25)

	if left.P0 != q.P0 || right.P2 != q.P2 {
		t.Error("subdivision must keep the endpoints")
	}
	if !approxPoint(left.P2, right.P0, 1e-12) {
		t.Error("halves must join at the split point")
	}
	if !approxPoint(left.P2, q.Eval(0.25), 1e-12) {
		t.Errorf("split point %v, want %v", left.P2, q.Eval(0.25))
	}
	// Both halves trace the original curve.
	for _, u := range []float64{0, 0.3, 0.7, 1} {
		if got, want := left.Eval(u), q.Eval(u*0.25); !approxPoint(got, want, 1e-9) {
			t.Errorf("left.Eval(%v) = %v, want %v", u, got, want)
		}
		if got, want := right.Eval(u), q.Eval(0.25+u*0.75); !approxPoint(got, want, 1e-9) {
			t.Errorf("right.Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestQuadBez_Extrema(t *testing.T) {
	// Symmetric arch: one extremum in y at t=0.5.
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	ex := q.Extrema()
	if len(ex) != 1 || !almostEqual(ex[0], 0.5, 1e-10) {
		t.Errorf("Extrema = %v, want [0.5]", ex)
	}

	// A straight diagonal has none.
	straight := QuadBez{P0: Pt(0, 0), P1: Pt(50, 50), P2: Pt(100, 100)}
	if got := straight.Extrema(); len(got) != 0 {
		t.Errorf("straight Extrema = %v, want none", got)
	}
}

func TestQuadBez_BoundingBox(t *testing.T) {
	// The box covers the apex, not the control point.
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	verifyRect(t, q.BoundingBox(), NewRect(Pt(0, 0), Pt(100, 50)), 1e-10)
}

func TestQuadBez_Raise(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	c := q.Raise()

	if c.P0 != q.P0 || c.P3 != q.P2 {
		t.Error("raising must keep the endpoints")
	}
	for _, u := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if got, want := c.Eval(u), q.Eval(u); !approxPoint(got, want, 1e-9) {
			t.Errorf("raised.Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}

	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want P0", got)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want P3", got)
	}
	if got := c.Eval(0.5); !approxPoint(got, Pt(50, 75), 1e-10) {
		t.Errorf("Eval(0.5) = %v, want (50, 75)", got)
	}
}

func TestCubicBez_SubdivideAt(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	left, right := c.SubdivideAt(0.5)

	if left.P0 != c.P0 || right.P3 != c.P3 {
		t.Error("subdivision must keep the endpoints")
	}
	if !approxPoint(left.P3, c.Eval(0.5), 1e-12) {
		t.Errorf("split point %v, want %v", left.P3, c.Eval(0.5))
	}
	for _, u := range []float64{0, 0.25, 0.75, 1} {
		if got, want := left.Eval(u), c.Eval(u*0.5); !approxPoint(got, want, 1e-9) {
			t.Errorf("left.Eval(%v) = %v, want %v", u, got, want)
		}
		if got, want := right.Eval(u), c.Eval(0.5+u*0.5); !approxPoint(got, want, 1e-9) {
			t.Errorf("right.Eval(%v) = %v, want %v", u, got, want)
		}
	}

	l2, r2 := c.Subdivide()
	if l2 != left || r2 != right {
		t.Error("Subdivide should equal SubdivideAt(0.5)")
	}
}

func TestCubicBez_Deriv(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	d := c.Deriv()

	// Central difference approximation at several parameters.
	const h = 1e-6
	for _, u := range []float64{0.1, 0.5, 0.9} {
		numeric := c.Eval(u + h).Sub(c.Eval(u - h)).Mul(1 / (2 * h))
		analytic := d.Eval(u)
		if math.Abs(numeric.X-analytic.X) > 1e-3 || math.Abs(numeric.Y-analytic.Y) > 1e-3 {
			t.Errorf("Deriv at %v = %v, numeric %v", u, analytic, numeric)
		}
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	// Symmetric arch: y peaks at t=0.5, x is monotone.
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	ex := c.Extrema()

	found := false
	for _, e := range ex {
		if almostEqual(e, 0.5, 1e-9) {
			found = true
		}
	}
	if !found {
		t.Errorf("Extrema = %v, want to include 0.5", ex)
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}
	verifyRect(t, c.BoundingBox(), NewRect(Pt(0, 0), Pt(100, 75)), 1e-9)
}
