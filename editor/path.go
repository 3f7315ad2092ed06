package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// Path is one contour of the glyph being edited: a closed variant over the
// cubic, quadratic, and hyperbezier representations. Implementations are
// immutable once published; WithPoints returns a new value with the same
// identity and representation, which is how every point mutation flows.
type Path interface {
	// ID identifies the path itself (distinct from its points' IDs).
	ID() entity.ID
	// Points returns the editable points. For hyper paths these are the
	// stored on-curve points only. Callers must not modify the slice.
	Points() []PathPoint
	Closed() bool
	Len() int
	IsEmpty() bool
	// Segments returns the drawable segments in order.
	Segments() []SegmentInfo
	// BoundingBox returns the tight box of the drawn outline; false when
	// the path has nothing to draw.
	BoundingBox() (glyphed.Rect, bool)
	// WithPoints returns a path of the same representation and identity
	// with the given points. Hyper paths re-solve their spline.
	WithPoints(points []PathPoint) Path
	// ToContour converts the path to its stored form.
	ToContour() font.Contour

	isPath()
}

// PathFromContour builds the editable form of a stored contour, choosing
// the representation from the point types present: hyper point types win,
// then quadratic, then cubic. Every point receives a fresh ID.
func PathFromContour(counter *entity.Counter, c font.Contour) Path {
	hasHyper := false
	hasQuad := false
	for _, p := range c.Points {
		switch p.Type {
		case font.PointHyper, font.PointHyperCorner:
			hasHyper = true
		case font.PointQCurve:
			hasQuad = true
		}
	}
	switch {
	case hasHyper:
		return HyperFromContour(counter, c)
	case hasQuad:
		return QuadraticFromContour(counter, c)
	default:
		return CubicFromContour(counter, c)
	}
}

// contourIsClosed reports whether a stored contour is closed: open contours
// start with a move point.
func contourIsClosed(c font.Contour) bool {
	return len(c.Points) == 0 || c.Points[0].Type != font.PointMove
}

// pointsFromContour converts stored points to editable points with fresh
// IDs. Closed contours are rotated so the list starts on-curve, which keeps
// segment walking uniform; off-curve runs that wrapped the seam end up at
// the tail, attached to the closing segment.
func pointsFromContour(counter *entity.Counter, c font.Contour, closed bool) []PathPoint {
	pts := make([]PathPoint, 0, len(c.Points))
	for _, p := range c.Points {
		kind := OnCurve
		switch p.Type {
		case font.PointOffCurve:
			kind = OffCurve
		case font.PointCurve, font.PointQCurve, font.PointHyper:
			kind = OnCurveSmooth
		}
		pts = append(pts, PathPoint{
			ID:    counter.Next(),
			Point: glyphed.Point{X: p.X, Y: p.Y},
			Kind:  kind,
		})
	}
	if closed {
		if i := firstOnCurve(pts); i > 0 {
			rotated := make([]PathPoint, 0, len(pts))
			rotated = append(rotated, pts[i:]...)
			rotated = append(rotated, pts[:i]...)
			pts = rotated
		}
	}
	return pts
}

func firstOnCurve(pts []PathPoint) int {
	for i, p := range pts {
		if p.IsOnCurve() {
			return i
		}
	}
	return 0
}

// walkSegments builds segment geometry from a point list where off-curve
// runs sit between on-curve points. The off-curve run length selects the
// segment kind: none is a line, one a quadratic, two a cubic. Longer runs
// are split TrueType-style with implied on-curve midpoints. For closed
// paths a final segment wraps back to the first point.
func walkSegments(pathID entity.ID, pts []PathPoint, closed bool) []SegmentInfo {
	if len(pts) < 2 {
		return nil
	}
	var segs []SegmentInfo
	var offs []glyphed.Point
	prev := pts[0].Point
	prevIdx := 0

	emit := func(end glyphed.Point, endIdx int) {
		switch len(offs) {
		case 0:
			segs = append(segs, SegmentInfo{pathID, prevIdx, endIdx, glyphed.Line{P0: prev, P1: end}})
		case 1:
			segs = append(segs, SegmentInfo{pathID, prevIdx, endIdx, glyphed.QuadBez{P0: prev, P1: offs[0], P2: end}})
		case 2:
			segs = append(segs, SegmentInfo{pathID, prevIdx, endIdx, glyphed.CubicBez{P0: prev, P1: offs[0], P2: offs[1], P3: end}})
		default:
			// Implied on-curve points midway between consecutive
			// off-curves, TrueType style. The sub-segments share the
			// bounding point indices.
			for i := 0; i+1 < len(offs); i++ {
				mid := offs[i].Lerp(offs[i+1], 0.5)
				segs = append(segs, SegmentInfo{pathID, prevIdx, endIdx, glyphed.QuadBez{P0: prev, P1: offs[i], P2: mid}})
				prev = mid
			}
			segs = append(segs, SegmentInfo{pathID, prevIdx, endIdx, glyphed.QuadBez{P0: prev, P1: offs[len(offs)-1], P2: end}})
		}
		prev = end
		prevIdx = endIdx
		offs = offs[:0]
	}

	for i, p := range pts[1:] {
		if p.IsOnCurve() {
			emit(p.Point, i+1)
		} else {
			offs = append(offs, p.Point)
		}
	}
	if closed {
		emit(pts[0].Point, 0)
	}
	return segs
}

// segmentsBounds unions the tight boxes of all segments.
func segmentsBounds(segs []SegmentInfo) (glyphed.Rect, bool) {
	if len(segs) == 0 {
		return glyphed.Rect{}, false
	}
	box := segs[0].Curve.BoundingBox()
	for _, s := range segs[1:] {
		box = box.Union(s.Curve.BoundingBox())
	}
	return box, true
}

// translatePoints returns a copy of pts with the points whose IDs are in
// sel moved by delta. When sel is nil every point moves.
func translatePoints(pts []PathPoint, sel *Selection, delta glyphed.Vec2) []PathPoint {
	out := make([]PathPoint, len(pts))
	for i, p := range pts {
		if sel == nil || sel.Contains(p.ID) {
			p = p.Translated(delta)
		}
		out[i] = p
	}
	return out
}
