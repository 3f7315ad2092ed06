package font

import (
	"testing"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

func testGlyph() Glyph {
	return Glyph{
		Name:       "A",
		Width:      800,
		Codepoints: []rune{'A'},
		Contours: []Contour{{Points: []ContourPoint{
			{X: 100, Y: 100, Type: PointLine},
			{X: 700, Y: 100, Type: PointLine},
			{X: 700, Y: 700, Type: PointLine},
			{X: 100, Y: 700, Type: PointLine},
		}}},
		LeftGroup:  "public.kern1.A",
		RightGroup: "public.kern2.A",
	}
}

func TestPointTypeIsOnCurve(t *testing.T) {
	for _, pt := range []PointType{PointMove, PointLine, PointCurve, PointQCurve, PointHyper, PointHyperCorner} {
		if !pt.IsOnCurve() {
			t.Errorf("%v should be on-curve", pt)
		}
	}
	if PointOffCurve.IsOnCurve() {
		t.Error("off-curve should not be on-curve")
	}
}

func TestGlyphSideBearings(t *testing.T) {
	g := testGlyph()

	if got := g.LeftSideBearing(); got != 100 {
		t.Errorf("LSB = %g, want 100", got)
	}
	if got := g.RightSideBearing(); got != 100 {
		t.Errorf("RSB = %g, want 100", got)
	}

	empty := Glyph{Name: "space", Width: 250}
	if got := empty.LeftSideBearing(); got != 0 {
		t.Errorf("empty LSB = %g, want 0", got)
	}
	if got := empty.RightSideBearing(); got != 250 {
		t.Errorf("empty RSB = %g, want the full width", got)
	}
}

func TestGlyphCloneIsDeep(t *testing.T) {
	g := testGlyph()
	var counter entity.Counter
	g.Components = []Component{NewComponent(&counter, "B", glyphed.Identity())}

	c := g.Clone()
	c.Contours[0].Points[0].X = -1
	c.Codepoints[0] = 'Z'
	c.Components[0].Base = "C"

	if g.Contours[0].Points[0].X != 100 {
		t.Error("clone shares contour storage")
	}
	if g.Codepoints[0] != 'A' {
		t.Error("clone shares codepoint storage")
	}
	if g.Components[0].Base != "B" {
		t.Error("clone shares component storage")
	}
}

func TestComponentTranslated(t *testing.T) {
	var counter entity.Counter
	c := NewComponent(&counter, "A", glyphed.Identity())

	moved := c.Translated(10, 20)
	if got := moved.Transform.TransformPoint(glyphed.Point{}); got != (glyphed.Point{X: 10, Y: 20}) {
		t.Errorf("origin maps to %v, want (10, 20)", got)
	}
	// Translations compose.
	moved = moved.Translated(5, 0)
	if got := moved.Transform.TransformPoint(glyphed.Point{}); got != (glyphed.Point{X: 15, Y: 20}) {
		t.Errorf("origin maps to %v, want (15, 20)", got)
	}
	// The receiver is a value; the original is untouched.
	if !c.Transform.IsIdentity() {
		t.Error("Translated mutated the original component")
	}
}

func TestMetricsLineHeight(t *testing.T) {
	m := Metrics{UnitsPerEm: 1000, Ascender: 800, Descender: -200}
	if got := m.LineHeight(); got != 1200 {
		t.Errorf("LineHeight = %g, want 1200", got)
	}
}
