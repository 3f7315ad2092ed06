package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// QuadraticPath is a contour whose curved segments are quadratic Beziers,
// the TrueType flavor. Runs of consecutive off-curves carry implied
// on-curve midpoints, handled at segment-walking time.
type QuadraticPath struct {
	points []PathPoint
	closed bool
	id     entity.ID
}

// NewQuadraticPath builds a quadratic path around the given points.
func NewQuadraticPath(counter *entity.Counter, points []PathPoint, closed bool) *QuadraticPath {
	return &QuadraticPath{points: points, closed: closed, id: counter.Next()}
}

// QuadraticFromContour converts a stored contour, assigning fresh IDs.
func QuadraticFromContour(counter *entity.Counter, c font.Contour) *QuadraticPath {
	closed := contourIsClosed(c)
	return &QuadraticPath{
		points: pointsFromContour(counter, c, closed),
		closed: closed,
		id:     counter.Next(),
	}
}

func (p *QuadraticPath) ID() entity.ID       { return p.id }
func (p *QuadraticPath) Points() []PathPoint { return p.points }
func (p *QuadraticPath) Closed() bool        { return p.closed }
func (p *QuadraticPath) Len() int            { return len(p.points) }
func (p *QuadraticPath) IsEmpty() bool       { return len(p.points) == 0 }
func (p *QuadraticPath) isPath()             {}

func (p *QuadraticPath) Segments() []SegmentInfo {
	return walkSegments(p.id, p.points, p.closed)
}

func (p *QuadraticPath) BoundingBox() (glyphed.Rect, bool) {
	return segmentsBounds(p.Segments())
}

// WithPoints returns a quadratic path with the same identity and new points.
func (p *QuadraticPath) WithPoints(points []PathPoint) Path {
	return &QuadraticPath{points: points, closed: p.closed, id: p.id}
}

func (p *QuadraticPath) ToContour() font.Contour {
	return pointsToContour(p.points, p.closed, font.PointQCurve)
}
