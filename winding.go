package glyphed

// Nonzero winding-number containment for filled outlines. Curved segments
// are flattened to polylines by recursive subdivision and the winding number
// is accumulated edge by edge. The component hit test in the editor package
// uses this to decide whether a click lands inside a component's filled area.

// FlattenTolerance is the maximum distance between a curve and its polyline
// approximation, in the coordinate units of the input geometry.
const FlattenTolerance = 0.1

// Winding returns the winding number of p with respect to the closed polygon
// pts. The polygon is implicitly closed from the last point back to the
// first. A nonzero result means p is inside a filled region.
func Winding(pts []Point, p Point) int {
	if len(pts) < 3 {
		return 0
	}

	winding := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]

		// Upward crossing: count +1 when p is strictly left of the edge.
		// Downward crossing: count -1 when p is strictly right of it.
		if a.Y <= p.Y {
			if b.Y > p.Y && cross(a, b, p) > 0 {
				winding++
			}
		} else {
			if b.Y <= p.Y && cross(a, b, p) < 0 {
				winding--
			}
		}
	}
	return winding
}

// cross returns the cross product of (b-a) and (p-a).
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// FlattenQuad appends a polyline approximation of the quadratic Bezier to
// dst, excluding the start point and including the end point.
func FlattenQuad(q QuadBez, tolerance float64, dst []Point) []Point {
	dist := distanceToLine(q.P1, q.P0, q.P2)
	if dist < tolerance {
		return append(dst, q.P2)
	}

	// Subdivide at t=0.5
	q0 := q.P0.Lerp(q.P1, 0.5)
	q1 := q.P1.Lerp(q.P2, 0.5)
	mid := q0.Lerp(q1, 0.5)

	dst = FlattenQuad(QuadBez{P0: q.P0, P1: q0, P2: mid}, tolerance, dst)
	return FlattenQuad(QuadBez{P0: mid, P1: q1, P2: q.P2}, tolerance, dst)
}

// FlattenCubic appends a polyline approximation of the cubic Bezier to dst,
// excluding the start point and including the end point.
func FlattenCubic(c CubicBez, tolerance float64, dst []Point) []Point {
	d1 := distanceToLine(c.P1, c.P0, c.P3)
	d2 := distanceToLine(c.P2, c.P0, c.P3)
	if d1 < tolerance && d2 < tolerance {
		return append(dst, c.P3)
	}

	left, right := c.Subdivide()
	dst = FlattenCubic(left, tolerance, dst)
	return FlattenCubic(right, tolerance, dst)
}

// distanceToLine returns the distance from p to the infinite line through
// a and b. Falls back to point distance when a == b.
func distanceToLine(p, a, b Point) float64 {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return p.Distance(a)
	}
	return abs(d.Cross(p.Sub(a))) / length
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
