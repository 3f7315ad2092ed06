package editor

import (
	"testing"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

func hyperSquare(counter *entity.Counter, closed bool) *HyperPath {
	pts := []PathPoint{
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 100}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 100}, Kind: OnCurveSmooth},
	}
	return NewHyperPath(counter, pts, closed)
}

func TestHyperSegmentsInterpolatePoints(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, true)

	segs := p.Segments()
	if len(segs) != 4 {
		t.Fatalf("closed 4-point hyper: %d segments, want 4", len(segs))
	}
	pts := p.Points()
	for i, seg := range segs {
		start := pts[i].Point
		end := pts[(i+1)%len(pts)].Point
		if seg.Curve.Start() != start || seg.Curve.End() != end {
			t.Errorf("segment %d spans %v..%v, want %v..%v",
				i, seg.Curve.Start(), seg.Curve.End(), start, end)
		}
	}
}

func TestHyperOpenSegmentCount(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, false)

	if got := len(p.Segments()); got != 3 {
		t.Errorf("open 4-point hyper: %d segments, want 3", got)
	}
}

func TestHyperSmoothTangentContinuity(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, true)

	// At each smooth point the incoming and outgoing handles are parallel:
	// both follow the chord between the point's neighbors.
	segs := p.Segments()
	for i := range segs {
		out, ok := segs[i].Curve.(glyphed.CubicBez)
		if !ok {
			t.Fatalf("segment %d is %T, want CubicBez", i, segs[i].Curve)
		}
		in := segs[(i+3)%4].Curve.(glyphed.CubicBez)

		outDir := out.P1.Sub(out.P0).Normalize()
		inDir := in.P3.Sub(in.P2).Normalize()
		if !almostEqual(outDir.X, inDir.X, 1e-9) || !almostEqual(outDir.Y, inDir.Y, 1e-9) {
			t.Errorf("tangent break at point %d: in %v, out %v", i, inDir, outDir)
		}
	}
}

func TestHyperCornerBreaksTangent(t *testing.T) {
	var counter entity.Counter
	pts := []PathPoint{
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 0}, Kind: OnCurve}, // corner
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 100}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 100}, Kind: OnCurveSmooth},
	}
	p := NewHyperPath(&counter, pts, true)

	segs := p.Segments()
	// Outgoing handle at the corner follows its own segment's chord, up the
	// right edge.
	out := segs[1].Curve.(glyphed.CubicBez)
	dir := out.P1.Sub(out.P0).Normalize()
	if !almostEqual(dir.X, 0, 1e-9) || !almostEqual(dir.Y, 1, 1e-9) {
		t.Errorf("corner outgoing tangent = %v, want (0, 1)", dir)
	}
	// Incoming handle follows the bottom edge's travel direction.
	in := segs[0].Curve.(glyphed.CubicBez)
	dir = in.P3.Sub(in.P2).Normalize()
	if !almostEqual(dir.X, 1, 1e-9) || !almostEqual(dir.Y, 0, 1e-9) {
		t.Errorf("corner incoming tangent = %v, want (1, 0)", dir)
	}
}

func TestHyperCoincidentPointsDegradeToLine(t *testing.T) {
	var counter entity.Counter
	pts := []PathPoint{
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 0}, Kind: OnCurveSmooth},
	}
	p := NewHyperPath(&counter, pts, false)

	if _, ok := p.Segments()[0].Curve.(glyphed.Line); !ok {
		t.Errorf("zero-length chord should solve to a Line, got %T", p.Segments()[0].Curve)
	}
}

func TestHyperWithPointsResolves(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, true)
	before := p.Segments()[0].Curve.(glyphed.CubicBez)

	moved := p.WithPoints(translatePoints(p.Points(), nil, glyphed.Vec2{X: 0, Y: 50})).(*HyperPath)

	after := moved.Segments()[0].Curve.(glyphed.CubicBez)
	if after.P0 == before.P0 {
		t.Error("moving every point should move the solved segments")
	}
	if moved.ID() != p.ID() {
		t.Error("WithPoints must preserve identity")
	}
}

func TestHyperFromContourDropsOffCurves(t *testing.T) {
	c := font.Contour{Points: []font.ContourPoint{
		{X: 0, Y: 0, Type: font.PointHyper},
		{X: 30, Y: 40, Type: font.PointOffCurve},
		{X: 100, Y: 0, Type: font.PointHyperCorner},
		{X: 50, Y: 100, Type: font.PointHyper},
	}}
	var counter entity.Counter
	p := HyperFromContour(&counter, c)

	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3 (off-curve dropped)", p.Len())
	}
	if p.Points()[1].Kind != OnCurve {
		t.Error("hyper-corner should load as a corner point")
	}
	if p.Points()[0].Kind != OnCurveSmooth {
		t.Error("hyper point should load smooth")
	}
}

func TestHyperToContourRoundTrip(t *testing.T) {
	var counter entity.Counter
	pts := []PathPoint{
		{ID: counter.Next(), Point: glyphed.Point{X: 0, Y: 0}, Kind: OnCurveSmooth},
		{ID: counter.Next(), Point: glyphed.Point{X: 100, Y: 0}, Kind: OnCurve},
		{ID: counter.Next(), Point: glyphed.Point{X: 50, Y: 100}, Kind: OnCurveSmooth},
	}
	p := NewHyperPath(&counter, pts, true)

	c := p.ToContour()
	wantTypes := []font.PointType{font.PointHyper, font.PointHyperCorner, font.PointHyper}
	for i, pt := range c.Points {
		if pt.Type != wantTypes[i] {
			t.Errorf("point %d type = %v, want %v", i, pt.Type, wantTypes[i])
		}
	}

	back := PathFromContour(&counter, c)
	if _, ok := back.(*HyperPath); !ok {
		t.Fatalf("round trip loaded %T, want *HyperPath", back)
	}
	if back.Len() != 3 || !back.Closed() {
		t.Errorf("round trip: Len = %d, Closed = %v", back.Len(), back.Closed())
	}
}

func TestHyperToCubicStructure(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, true)

	cubic := p.ToCubic(&counter)

	// Four cubic segments: the shared start plus off, off per segment, with
	// an explicit on-curve between segments (none for the closing wrap).
	pts := cubic.Points()
	if len(pts) != 12 {
		t.Fatalf("lowered point count = %d, want 12", len(pts))
	}
	if !cubic.Closed() {
		t.Error("lowering must preserve the closed flag")
	}
	if len(cubic.Segments()) != 4 {
		t.Errorf("lowered segment count = %d, want 4", len(cubic.Segments()))
	}

	// The lowered geometry matches the solved spline exactly.
	for i, seg := range cubic.Segments() {
		want := p.Segments()[i].Curve.(glyphed.CubicBez)
		got, ok := seg.Curve.(glyphed.CubicBez)
		if !ok {
			t.Fatalf("lowered segment %d is %T", i, seg.Curve)
		}
		if got != want {
			t.Errorf("segment %d geometry drifted:\n got %+v\nwant %+v", i, got, want)
		}
	}
}

func TestHyperToCubicRegeneratesIDs(t *testing.T) {
	var counter entity.Counter
	p := hyperSquare(&counter, true)

	cubic := p.ToCubic(&counter)

	old := map[entity.ID]bool{p.ID(): true}
	for _, pt := range p.Points() {
		old[pt.ID] = true
	}
	if old[cubic.ID()] {
		t.Error("lowered path reused the hyper path's ID")
	}
	for _, pt := range cubic.Points() {
		if old[pt.ID] {
			t.Errorf("lowered point reused ID %d", pt.ID)
		}
	}
}
