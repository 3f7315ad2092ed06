// Package font holds the in-memory document store shared between editing
// sessions and external collaborators: glyph outlines, components, font
// metrics, and the kerning pair/group tables.
//
// The store itself (Workspace) is guarded by a reader/writer lock. Data
// values (Glyph, Contour, Component) are plain values copied in and out;
// writers replace entries wholesale instead of mutating shared storage.
package font

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

// PointType classifies a contour point, mirroring UFO point types plus the
// hyperbezier extensions.
type PointType int

const (
	// PointMove starts an open contour.
	PointMove PointType = iota
	// PointLine is an on-curve point joined to its predecessor by a line.
	PointLine
	// PointOffCurve is a Bezier control point.
	PointOffCurve
	// PointCurve is an on-curve point ending a cubic segment.
	PointCurve
	// PointQCurve is an on-curve point ending a quadratic segment.
	PointQCurve
	// PointHyper is a hyperbezier smooth point (on-curve, auto controls).
	PointHyper
	// PointHyperCorner is a hyperbezier corner point (on-curve,
	// independent segments).
	PointHyperCorner
)

// IsOnCurve reports whether the point type sits on the outline itself.
func (t PointType) IsOnCurve() bool {
	return t != PointOffCurve
}

// ContourPoint is a point in a stored contour, in design units.
type ContourPoint struct {
	X, Y float64
	Type PointType
}

// Contour is a closed sequence of contour points.
type Contour struct {
	Points []ContourPoint
}

// Component is a reference to another glyph placed under an affine
// transform. Components let glyphs reuse other glyphs as building blocks;
// Arabic fonts lean on this heavily for base letters combined with dots and
// marks.
type Component struct {
	// Base is the name of the referenced glyph.
	Base string
	// Transform places the base glyph's outline. Identity by default.
	Transform glyphed.Matrix
	// ID identifies the component for selection and hit testing.
	ID entity.ID
}

// NewComponent creates a component with a fresh ID from the counter.
func NewComponent(counter *entity.Counter, base string, transform glyphed.Matrix) Component {
	return Component{
		Base:      base,
		Transform: transform,
		ID:        counter.Next(),
	}
}

// Translated returns a copy of the component moved by (dx, dy) in design
// space.
func (c Component) Translated(dx, dy float64) Component {
	c.Transform = glyphed.Translate(dx, dy).Multiply(c.Transform)
	return c
}

// Glyph is the stored form of a single glyph.
type Glyph struct {
	Name       string
	Width      float64
	Codepoints []rune
	Contours   []Contour
	Components []Component

	// LeftGroup and RightGroup are the glyph's primary kerning groups
	// (e.g. "public.kern1.O"), empty when the glyph has none. They are
	// passed to the kerning resolver as hints.
	LeftGroup  string
	RightGroup string
}

// LeftSideBearing returns the distance from x=0 to the leftmost contour
// point, or 0 for an empty glyph.
func (g *Glyph) LeftSideBearing() float64 {
	minX, _, ok := g.boundsX()
	if !ok {
		return 0
	}
	return minX
}

// RightSideBearing returns the distance from the rightmost contour point to
// the advance width, or the full width for an empty glyph.
func (g *Glyph) RightSideBearing() float64 {
	_, maxX, ok := g.boundsX()
	if !ok {
		return g.Width
	}
	return g.Width - maxX
}

func (g *Glyph) boundsX() (minX, maxX float64, ok bool) {
	for _, c := range g.Contours {
		for _, p := range c.Points {
			if !ok {
				minX, maxX, ok = p.X, p.X, true
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
		}
	}
	return minX, maxX, ok
}

// Clone returns a deep copy of the glyph. Sessions edit a clone and sync it
// back so the shared store never aliases live editing state.
func (g *Glyph) Clone() Glyph {
	out := *g
	out.Codepoints = append([]rune(nil), g.Codepoints...)
	out.Components = append([]Component(nil), g.Components...)
	out.Contours = make([]Contour, len(g.Contours))
	for i, c := range g.Contours {
		out.Contours[i] = Contour{Points: append([]ContourPoint(nil), c.Points...)}
	}
	return out
}

// Metrics carries the font-wide vertical metrics used for viewport fitting
// and guide drawing. XHeight and CapHeight are zero when the font does not
// define them.
type Metrics struct {
	UnitsPerEm float64
	Ascender   float64
	Descender  float64
	XHeight    float64
	CapHeight  float64
}

// LineHeight returns the text layout line height (UPM - descender).
func (m Metrics) LineHeight() float64 {
	return m.UnitsPerEm - m.Descender
}
