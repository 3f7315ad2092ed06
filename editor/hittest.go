package editor

import (
	"math"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// DefaultClickDistance is the pointer slop for point and segment hits, in
// screen pixels.
const DefaultClickDistance = 10.0

// PointHit is the result of a point hit test.
type PointHit struct {
	// ID of the hit point.
	ID entity.ID
	// Pos is the point's design-space position.
	Pos glyphed.Point
	// OnCurve distinguishes outline points from control handles.
	OnCurve bool
	// Distance is the screen-space distance from the query position.
	Distance float64
}

// HitTestPoint finds the editable point nearest to the screen position
// within maxDist pixels. Points compare in screen space so the slop is
// zoom-independent; ties keep the earliest point in path order.
func (s *EditSession) HitTestPoint(screenPos glyphed.Point, maxDist float64) (PointHit, bool) {
	var best PointHit
	bestDist := math.Inf(1)
	for _, p := range s.paths {
		for _, pt := range p.Points() {
			design := pt.Point
			design.X += s.activeSortXOffset
			d := s.viewport.ToScreen(design).Sub(screenPos).Length()
			if d <= maxDist && d < bestDist {
				bestDist = d
				best = PointHit{ID: pt.ID, Pos: pt.Point, OnCurve: pt.IsOnCurve(), Distance: d}
			}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// SegmentHit is the result of a segment hit test: the segment and the
// parametric position of the nearest point on it.
type SegmentHit struct {
	SegmentInfo
	T float64
}

// HitTestSegments finds the path segment nearest to the screen position
// within maxDist pixels. The search runs in design space, so the pixel slop
// is divided by the zoom first.
func (s *EditSession) HitTestSegments(screenPos glyphed.Point, maxDist float64) (SegmentHit, bool) {
	design := s.viewport.ScreenToDesign(screenPos)
	design.X -= s.activeSortXOffset
	limitSq := (maxDist / s.viewport.Zoom) * (maxDist / s.viewport.Zoom)

	var best SegmentHit
	bestSq := math.Inf(1)
	for _, p := range s.paths {
		for _, seg := range p.Segments() {
			t, distSq := seg.Curve.Nearest(design)
			if distSq <= limitSq && distSq < bestSq {
				bestSq = distSq
				best = SegmentHit{SegmentInfo: seg, T: t}
			}
		}
	}
	return best, !math.IsInf(bestSq, 1)
}

// HitTestComponent finds the topmost component whose filled outline
// contains the screen position, testing in front-to-back order. A component
// whose base glyph is missing from the workspace yields no hit.
func (s *EditSession) HitTestComponent(screenPos glyphed.Point) (entity.ID, bool) {
	if s.workspace == nil {
		return 0, false
	}
	design := s.viewport.ScreenToDesign(screenPos)
	design.X -= s.activeSortXOffset

	for i := len(s.glyph.Components) - 1; i >= 0; i-- {
		comp := s.glyph.Components[i]
		polys, ok := s.baseOutlines(comp.Base)
		if !ok {
			return 0, false
		}
		// Test in the base glyph's own space: polygons are cached
		// untransformed and the query point moves instead.
		local := comp.Transform.Invert().TransformPoint(design)
		total := 0
		for _, poly := range polys {
			total += glyphed.Winding(poly, local)
		}
		if total != 0 {
			return comp.ID, true
		}
	}
	return 0, false
}

// baseOutlines returns the base glyph's contours flattened to polygons in
// the glyph's own design space, cached per glyph name. The cache entry for
// the session's glyph is invalidated on SyncToWorkspace.
func (s *EditSession) baseOutlines(name string) ([][]glyphed.Point, bool) {
	if polys, ok := s.outlines.Get(name); ok {
		return polys, true
	}
	var polys [][]glyphed.Point
	ok := s.workspace.ReadGlyph(name, func(g *font.Glyph) {
		polys = flattenGlyph(g)
	})
	if !ok {
		return nil, false
	}
	s.outlines.Set(name, polys)
	return polys, true
}

// flattenGlyph flattens every contour of the glyph to a polygon.
func flattenGlyph(g *font.Glyph) [][]glyphed.Point {
	var counter entity.Counter
	polys := make([][]glyphed.Point, 0, len(g.Contours))
	for _, c := range g.Contours {
		p := PathFromContour(&counter, c)
		segs := p.Segments()
		if len(segs) == 0 {
			continue
		}
		poly := make([]glyphed.Point, 0, 16)
		poly = append(poly, segs[0].Curve.Start())
		for _, seg := range segs {
			poly = flattenSegment(poly, seg.Curve)
		}
		polys = append(polys, poly)
	}
	return polys
}

// SelectionBounds returns the design-space bounding box of the selected
// points and how many points it covers; false when nothing is selected.
func (s *EditSession) SelectionBounds() (glyphed.Rect, int, bool) {
	var box glyphed.Rect
	count := 0
	for _, p := range s.paths {
		for _, pt := range p.Points() {
			if !s.selection.Contains(pt.ID) {
				continue
			}
			r := glyphed.NewRect(pt.Point, pt.Point)
			if count == 0 {
				box = r
			} else {
				box = box.Union(r)
			}
			count++
		}
	}
	return box, count, count > 0
}
