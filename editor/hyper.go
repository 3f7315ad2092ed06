package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// HyperPath is a contour that stores only on-curve points. Control points
// are not edited directly: a spline solve derives them, keeping the curve
// smooth through every smooth point. Corner points (Kind OnCurve) break the
// tangent chain and take one-sided handles.
type HyperPath struct {
	points []PathPoint
	closed bool
	id     entity.ID

	// solved segments, rebuilt whenever the points change
	segments []SegmentInfo
}

// NewHyperPath builds a hyper path around the given on-curve points and
// solves its spline.
func NewHyperPath(counter *entity.Counter, points []PathPoint, closed bool) *HyperPath {
	p := &HyperPath{points: points, closed: closed, id: counter.Next()}
	p.segments = solveHyperSegments(p.id, points, closed)
	return p
}

// HyperFromContour converts a stored contour, keeping only the on-curve
// points. Hyper corner points stay corners; everything else loads smooth.
func HyperFromContour(counter *entity.Counter, c font.Contour) *HyperPath {
	closed := contourIsClosed(c)
	pts := make([]PathPoint, 0, len(c.Points))
	for _, p := range c.Points {
		if p.Type == font.PointOffCurve {
			continue
		}
		kind := OnCurveSmooth
		if p.Type == font.PointHyperCorner {
			kind = OnCurve
		}
		pts = append(pts, PathPoint{
			ID:    counter.Next(),
			Point: glyphed.Point{X: p.X, Y: p.Y},
			Kind:  kind,
		})
	}
	hp := &HyperPath{points: pts, closed: closed, id: counter.Next()}
	hp.segments = solveHyperSegments(hp.id, pts, closed)
	return hp
}

func (p *HyperPath) ID() entity.ID       { return p.id }
func (p *HyperPath) Points() []PathPoint { return p.points }
func (p *HyperPath) Closed() bool        { return p.closed }
func (p *HyperPath) Len() int            { return len(p.points) }
func (p *HyperPath) IsEmpty() bool       { return len(p.points) == 0 }
func (p *HyperPath) isPath()             {}

// Segments returns the solved spline segments, not the stored points.
func (p *HyperPath) Segments() []SegmentInfo {
	return p.segments
}

func (p *HyperPath) BoundingBox() (glyphed.Rect, bool) {
	return segmentsBounds(p.segments)
}

// WithPoints returns a hyper path with the same identity, new points, and a
// freshly solved spline.
func (p *HyperPath) WithPoints(points []PathPoint) Path {
	next := &HyperPath{points: points, closed: p.closed, id: p.id}
	next.segments = solveHyperSegments(next.id, points, p.closed)
	return next
}

// ToContour saves only the on-curve points with their smooth/corner flags;
// the solved control points are recomputed on load.
func (p *HyperPath) ToContour() font.Contour {
	out := make([]font.ContourPoint, 0, len(p.points))
	for i, pt := range p.points {
		t := font.PointHyper
		if pt.Kind == OnCurve {
			t = font.PointHyperCorner
		}
		if i == 0 && !p.closed {
			t = font.PointMove
		}
		out = append(out, font.ContourPoint{X: pt.Point.X, Y: pt.Point.Y, Type: t})
	}
	return font.Contour{Points: out}
}

// ToCubic expands the solved spline into an explicit cubic path: two
// off-curve control points per curved segment. Every point and the path
// itself receive fresh IDs, so selections referencing the hyper path's
// points are stale afterward and must be cleared by the caller.
func (p *HyperPath) ToCubic(counter *entity.Counter) *CubicPath {
	if len(p.points) == 0 {
		return NewCubicPath(counter, nil, p.closed)
	}

	pts := make([]PathPoint, 0, 1+3*len(p.segments))
	pts = append(pts, PathPoint{
		ID:    counter.Next(),
		Point: p.points[0].Point,
		Kind:  OnCurveSmooth,
	})
	for i, seg := range p.segments {
		last := i == len(p.segments)-1
		switch c := seg.Curve.(type) {
		case glyphed.CubicBez:
			pts = append(pts,
				PathPoint{ID: counter.Next(), Point: c.P1, Kind: OffCurve},
				PathPoint{ID: counter.Next(), Point: c.P2, Kind: OffCurve},
			)
			if !(p.closed && last) {
				pts = append(pts, PathPoint{ID: counter.Next(), Point: c.P3, Kind: OnCurveSmooth})
			}
		case glyphed.Line:
			if !(p.closed && last) {
				pts = append(pts, PathPoint{ID: counter.Next(), Point: c.P1, Kind: OnCurve})
			}
		}
	}
	return NewCubicPath(counter, pts, p.closed)
}

// solveHyperSegments derives cubic segments through the on-curve points.
// Tangents at smooth points follow the chord between the two neighbors
// (Catmull-Rom style), giving tangent continuity; corner points and open
// endpoints use the one-sided chord. Handle length is a third of the
// segment chord.
func solveHyperSegments(pathID entity.ID, pts []PathPoint, closed bool) []SegmentInfo {
	n := len(pts)
	if n < 2 {
		return nil
	}

	segCount := n - 1
	if closed {
		segCount = n
	}

	at := func(i int) glyphed.Point {
		return pts[((i%n)+n)%n].Point
	}

	// Outgoing tangent direction at point i (unit vector, zero when
	// degenerate).
	tangent := func(i int, incoming bool) glyphed.Vec2 {
		p := pts[((i%n)+n)%n]
		hasPrev := closed || i > 0
		hasNext := closed || i < n-1
		if p.Kind == OnCurve || !hasPrev || !hasNext {
			// One-sided: along the chord of the segment being built.
			if incoming {
				return at(i).Sub(at(i - 1)).Normalize()
			}
			return at(i + 1).Sub(at(i)).Normalize()
		}
		return at(i + 1).Sub(at(i - 1)).Normalize()
	}

	segs := make([]SegmentInfo, 0, segCount)
	for i := 0; i < segCount; i++ {
		start := at(i)
		end := at(i + 1)
		endIdx := (i + 1) % n
		chord := end.Sub(start).Length()
		if chord == 0 {
			segs = append(segs, SegmentInfo{pathID, i, endIdx, glyphed.Line{P0: start, P1: end}})
			continue
		}
		t0 := tangent(i, false)
		t1 := tangent(i+1, true)
		if t0.IsZero() || t1.IsZero() {
			segs = append(segs, SegmentInfo{pathID, i, endIdx, glyphed.Line{P0: start, P1: end}})
			continue
		}
		segs = append(segs, SegmentInfo{pathID, i, endIdx, glyphed.CubicBez{
			P0: start,
			P1: start.Add(t0.Mul(chord / 3)),
			P2: end.Add(t1.Mul(-chord / 3)),
			P3: end,
		}})
	}
	return segs
}
