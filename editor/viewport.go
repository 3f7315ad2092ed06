package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/font"
)

// Size is a canvas extent in screen pixels.
type Size struct {
	Width, Height float64
}

// MinZoom and MaxZoom bound interactive zooming.
const (
	MinZoom = 0.02
	MaxZoom = 50.0
)

// fitPadding leaves breathing room around the glyph when fitting the view:
// the em occupies this fraction of the canvas height.
const fitPadding = 0.6

// Viewport maps between design space (font units, y-up) and screen space
// (pixels, y-down). It holds the zoom factor and the screen-space offset of
// the design origin.
//
// Auto-fit runs at most once per session: the first layout latches the
// transform, and later canvas resizes leave the user's pan and zoom alone.
type Viewport struct {
	Zoom   float64
	Offset glyphed.Vec2

	initialized bool
}

// NewViewport returns an identity viewport awaiting its first layout.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// ToScreen maps a design-space point to screen space. The y axis flips:
// design y grows upward, screen y grows downward.
func (v Viewport) ToScreen(p glyphed.Point) glyphed.Point {
	return glyphed.Point{
		X: p.X*v.Zoom + v.Offset.X,
		Y: -p.Y*v.Zoom + v.Offset.Y,
	}
}

// ScreenToDesign maps a screen-space point back to design space. Exact
// inverse of ToScreen.
func (v Viewport) ScreenToDesign(p glyphed.Point) glyphed.Point {
	return glyphed.Point{
		X: (p.X - v.Offset.X) / v.Zoom,
		Y: -(p.Y - v.Offset.Y) / v.Zoom,
	}
}

// Initialized reports whether the fit latch has fired.
func (v Viewport) Initialized() bool {
	return v.initialized
}

// Initialize computes a fit-to-canvas transform from the font's vertical
// metrics and the glyph's advance width, centering the em box. It runs only
// once; subsequent calls are no-ops so canvas resizes do not stomp the
// user's pan and zoom. Returns whether the transform changed.
func (v *Viewport) Initialize(canvas Size, metrics font.Metrics, glyphWidth float64) bool {
	if v.initialized || canvas.Width <= 0 || canvas.Height <= 0 {
		return false
	}
	emHeight := metrics.Ascender - metrics.Descender
	if emHeight <= 0 {
		emHeight = metrics.UnitsPerEm
	}
	if emHeight <= 0 {
		return false
	}

	zoom := canvas.Height * fitPadding / emHeight
	zoom = clampZoom(zoom)

	// Design-space center of the glyph's em box.
	dcx := glyphWidth / 2
	dcy := (metrics.Ascender + metrics.Descender) / 2

	v.Zoom = zoom
	v.Offset = glyphed.Vec2{
		X: canvas.Width/2 - dcx*zoom,
		Y: canvas.Height/2 + dcy*zoom,
	}
	v.initialized = true
	return true
}

// ResetFit releases the latch so the next layout refits the view.
func (v *Viewport) ResetFit() {
	v.initialized = false
}

// SetZoom sets the zoom factor, clamped to the interactive range, keeping
// the given screen point fixed (zoom about the cursor).
func (v *Viewport) SetZoom(zoom float64, anchor glyphed.Point) {
	zoom = clampZoom(zoom)
	if zoom == v.Zoom {
		return
	}
	design := v.ScreenToDesign(anchor)
	v.Zoom = zoom
	// Re-solve the offset so design maps back to anchor.
	v.Offset = glyphed.Vec2{
		X: anchor.X - design.X*zoom,
		Y: anchor.Y + design.Y*zoom,
	}
}

// Pan moves the view by a screen-space delta.
func (v *Viewport) Pan(delta glyphed.Vec2) {
	v.Offset = v.Offset.Add(delta)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
