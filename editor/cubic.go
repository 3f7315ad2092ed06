package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// CubicPath is a contour of explicit on-curve and off-curve points where
// curved segments are cubic Beziers. This is the workhorse representation:
// UFO contours without quadratic or hyper point types load as cubic.
type CubicPath struct {
	points []PathPoint
	closed bool
	id     entity.ID
}

// NewCubicPath builds a cubic path around the given points. The path gets a
// fresh ID; the points keep theirs.
func NewCubicPath(counter *entity.Counter, points []PathPoint, closed bool) *CubicPath {
	return &CubicPath{points: points, closed: closed, id: counter.Next()}
}

// CubicFromContour converts a stored contour, assigning fresh IDs.
func CubicFromContour(counter *entity.Counter, c font.Contour) *CubicPath {
	closed := contourIsClosed(c)
	return &CubicPath{
		points: pointsFromContour(counter, c, closed),
		closed: closed,
		id:     counter.Next(),
	}
}

func (p *CubicPath) ID() entity.ID       { return p.id }
func (p *CubicPath) Points() []PathPoint { return p.points }
func (p *CubicPath) Closed() bool        { return p.closed }
func (p *CubicPath) Len() int            { return len(p.points) }
func (p *CubicPath) IsEmpty() bool       { return len(p.points) == 0 }
func (p *CubicPath) isPath()             {}

// Segments returns the path's drawable segments.
func (p *CubicPath) Segments() []SegmentInfo {
	return walkSegments(p.id, p.points, p.closed)
}

// BoundingBox returns the tight box of the outline.
func (p *CubicPath) BoundingBox() (glyphed.Rect, bool) {
	return segmentsBounds(p.Segments())
}

// WithPoints returns a cubic path with the same identity and new points.
func (p *CubicPath) WithPoints(points []PathPoint) Path {
	return &CubicPath{points: points, closed: p.closed, id: p.id}
}

// ToContour converts back to the stored form. On-curve points following
// off-curves become curve points; the first point of an open path is a move.
func (p *CubicPath) ToContour() font.Contour {
	return pointsToContour(p.points, p.closed, font.PointCurve)
}

// pointsToContour is the shared stored-form conversion for cubic and
// quadratic paths. curveType is the on-curve type emitted after a run of
// off-curves.
func pointsToContour(pts []PathPoint, closed bool, curveType font.PointType) font.Contour {
	out := make([]font.ContourPoint, 0, len(pts))
	afterOff := false
	for i, p := range pts {
		var t font.PointType
		switch {
		case !p.IsOnCurve():
			t = font.PointOffCurve
			afterOff = true
		case i == 0 && !closed:
			t = font.PointMove
		case afterOff:
			t = curveType
			afterOff = false
		default:
			t = font.PointLine
		}
		out = append(out, font.ContourPoint{X: p.Point.X, Y: p.Point.Y, Type: t})
	}
	// A trailing off-curve run on a closed path curves back into the
	// first point.
	if closed && afterOff && len(out) > 0 && out[0].Type == font.PointLine {
		out[0].Type = curveType
	}
	return font.Contour{Points: out}
}
