package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

// Curve is the geometry shared by the segment kinds: straight lines,
// quadratic Beziers, and cubic Beziers from the root geometry package all
// satisfy it.
type Curve interface {
	Eval(t float64) glyphed.Point
	Nearest(p glyphed.Point) (t, distSq float64)
	Start() glyphed.Point
	End() glyphed.Point
	BoundingBox() glyphed.Rect
}

var (
	_ Curve = glyphed.Line{}
	_ Curve = glyphed.QuadBez{}
	_ Curve = glyphed.CubicBez{}
)

// SegmentInfo describes one drawable segment of a path: which path it
// belongs to, the indices of its bounding on-curve points in that path's
// point list (EndIndex is 0 for a closing segment), and its geometry. For
// hyper paths the geometry comes from the solved spline and the indices
// refer to the stored on-curve points.
type SegmentInfo struct {
	PathID     entity.ID
	StartIndex int
	EndIndex   int
	Curve      Curve
}

// flattenSegment appends a polyline approximation of the segment to pts,
// excluding the segment's start point (assumed already present).
func flattenSegment(pts []glyphed.Point, c Curve) []glyphed.Point {
	switch c := c.(type) {
	case glyphed.Line:
		return append(pts, c.P1)
	case glyphed.QuadBez:
		return glyphed.FlattenQuad(c, glyphed.FlattenTolerance, pts)
	case glyphed.CubicBez:
		return glyphed.FlattenCubic(c, glyphed.FlattenTolerance, pts)
	default:
		return append(pts, c.End())
	}
}
