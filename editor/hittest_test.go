package editor

import (
	"testing"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// identityView pins the viewport to zoom 1 and no offset, so design (x, y)
// maps to screen (x, -y).
func identityView(s *EditSession) {
	v := s.Viewport()
	v.Zoom = 1
	v.Offset = glyphed.Vec2{}
}

func TestHitTestPoint(t *testing.T) {
	s := newTestSession(t, "A")
	identityView(s)
	first := s.Paths()[0].Points()[0] // (100, 100)

	tests := []struct {
		name string
		pos  glyphed.Point
		hit  bool
	}{
		{"exact", glyphed.Point{X: 100, Y: -100}, true},
		{"inside slop", glyphed.Point{X: 105, Y: -94}, true},
		{"at edge of slop", glyphed.Point{X: 110, Y: -100}, true},
		{"past slop", glyphed.Point{X: 115, Y: -100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := s.HitTestPoint(tt.pos, DefaultClickDistance)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && hit.ID != first.ID {
				t.Errorf("hit point %d, want %d", hit.ID, first.ID)
			}
			if ok && hit.Pos != first.Point {
				t.Errorf("hit Pos = %v, want %v", hit.Pos, first.Point)
			}
		})
	}
}

func TestHitTestPointTieKeepsFirst(t *testing.T) {
	s := newTestSession(t, "A")
	identityView(s)
	p := PathFromContour(s.Counter(), font.Contour{Points: []font.ContourPoint{
		{X: 0, Y: 0, Type: font.PointMove},
		linePoint(10, 0),
	}})
	s.AddPath(p)

	// Equidistant from both endpoints: path order breaks the tie.
	hit, ok := s.HitTestPoint(glyphed.Point{X: 5, Y: 0}, DefaultClickDistance)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.ID != p.Points()[0].ID {
		t.Errorf("tie resolved to %d, want the earlier point %d", hit.ID, p.Points()[0].ID)
	}
}

func TestHitTestPointZoomIndependentSlop(t *testing.T) {
	s := newTestSession(t, "A")
	identityView(s)
	s.Viewport().Zoom = 0.1

	// Design (100, 100) sits at screen (10, -10); 8 px away still hits even
	// though that is 80 design units.
	if _, ok := s.HitTestPoint(glyphed.Point{X: 18, Y: -10}, DefaultClickDistance); !ok {
		t.Error("slop should be measured in screen pixels")
	}
}

func TestHitTestSegments(t *testing.T) {
	s := newTestSession(t, "A")
	identityView(s)

	// 5 design units above the bottom edge, halfway along.
	hit, ok := s.HitTestSegments(glyphed.Point{X: 400, Y: -95}, DefaultClickDistance)
	if !ok {
		t.Fatal("expected a segment hit")
	}
	if hit.StartIndex != 0 || hit.EndIndex != 1 {
		t.Errorf("hit segment %d..%d, want 0..1", hit.StartIndex, hit.EndIndex)
	}
	if !almostEqual(hit.T, 0.5, 1e-6) {
		t.Errorf("T = %g, want 0.5", hit.T)
	}

	if _, ok := s.HitTestSegments(glyphed.Point{X: 400, Y: -50}, DefaultClickDistance); ok {
		t.Error("50 design units away should miss at zoom 1")
	}

	// At high zoom the same design-space gap exceeds the pixel slop.
	s.Viewport().Zoom = 10
	if _, ok := s.HitTestSegments(glyphed.Point{X: 4000, Y: -950}, DefaultClickDistance); ok {
		t.Error("5 design units is 50 px at zoom 10, past the slop")
	}
}

func TestHitTestComponent(t *testing.T) {
	s := newTestSession(t, "Aacute")
	identityView(s)
	comp := s.Glyph().Components[0]

	id, ok := s.HitTestComponent(glyphed.Point{X: 400, Y: -300})
	if !ok || id != comp.ID {
		t.Fatalf("hit = %d, %v, want %d, true", id, ok, comp.ID)
	}
	if _, ok := s.HitTestComponent(glyphed.Point{X: 50, Y: -50}); ok {
		t.Error("point outside the base outline should miss")
	}
}

func TestHitTestComponentTransformed(t *testing.T) {
	ws := testWorkspace()
	var counter entity.Counter
	ws.SetGlyph(font.Glyph{
		Name:  "Ashift",
		Width: 1800,
		Components: []font.Component{
			font.NewComponent(&counter, "A", glyphed.Translate(1000, 0)),
		},
	})
	s, err := NewSession(ws, "Ashift")
	if err != nil {
		t.Fatal(err)
	}
	identityView(s)

	if _, ok := s.HitTestComponent(glyphed.Point{X: 400, Y: -300}); ok {
		t.Error("untranslated position should miss the shifted component")
	}
	if _, ok := s.HitTestComponent(glyphed.Point{X: 1400, Y: -300}); !ok {
		t.Error("translated position should hit")
	}
}

func TestHitTestComponentTopmostWins(t *testing.T) {
	ws := testWorkspace()
	var counter entity.Counter
	back := font.NewComponent(&counter, "A", glyphed.Identity())
	front := font.NewComponent(&counter, "B", glyphed.Identity())
	ws.SetGlyph(font.Glyph{
		Name:       "Stack",
		Width:      800,
		Components: []font.Component{back, front},
	})
	s, err := NewSession(ws, "Stack")
	if err != nil {
		t.Fatal(err)
	}
	identityView(s)

	// (300, 300) is inside both outlines; the later (front) component wins.
	id, ok := s.HitTestComponent(glyphed.Point{X: 300, Y: -300})
	if !ok || id != front.ID {
		t.Errorf("hit = %d, %v, want the front component %d", id, ok, front.ID)
	}
	// (600, 600) is only inside A.
	id, ok = s.HitTestComponent(glyphed.Point{X: 600, Y: -600})
	if !ok || id != back.ID {
		t.Errorf("hit = %d, %v, want the back component %d", id, ok, back.ID)
	}
}

func TestHitTestComponentMissingBaseAborts(t *testing.T) {
	ws := testWorkspace()
	var counter entity.Counter
	ws.SetGlyph(font.Glyph{
		Name:  "Broken",
		Width: 800,
		Components: []font.Component{
			font.NewComponent(&counter, "A", glyphed.Identity()),
			font.NewComponent(&counter, "Ghost", glyphed.Identity()),
		},
	})
	s, err := NewSession(ws, "Broken")
	if err != nil {
		t.Fatal(err)
	}
	identityView(s)

	// The front component's base is missing; the test stops there rather
	// than falling through to the valid component behind it.
	if _, ok := s.HitTestComponent(glyphed.Point{X: 400, Y: -300}); ok {
		t.Error("missing base glyph should yield no hit")
	}
}

func TestSelectionBounds(t *testing.T) {
	s := newTestSession(t, "A")
	pts := s.Paths()[0].Points()

	if _, _, ok := s.SelectionBounds(); ok {
		t.Fatal("empty selection should have no bounds")
	}

	s.SelectPoint(pts[0].ID, false)
	s.SelectPoint(pts[2].ID, true)
	box, count, ok := s.SelectionBounds()
	if !ok || count != 2 {
		t.Fatalf("count = %d, ok = %v, want 2, true", count, ok)
	}
	want := glyphed.NewRect(glyphed.Point{X: 100, Y: 100}, glyphed.Point{X: 700, Y: 700})
	if box != want {
		t.Errorf("bounds = %v, want %v", box, want)
	}
}
