package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

// PointKind classifies an editable path point.
type PointKind int

const (
	// OnCurve is a corner point on the outline.
	OnCurve PointKind = iota
	// OnCurveSmooth is an on-curve point with a smooth (tangent-
	// continuous) join.
	OnCurveSmooth
	// OffCurve is a Bezier control point.
	OffCurve
)

// IsOnCurve reports whether the kind sits on the outline itself.
func (k PointKind) IsOnCurve() bool {
	return k != OffCurve
}

// PathPoint is a single editable point: a design-space position plus the
// identity used by selections and hit testing.
type PathPoint struct {
	ID    entity.ID
	Point glyphed.Point
	Kind  PointKind
}

// IsOnCurve reports whether the point is on the outline.
func (p PathPoint) IsOnCurve() bool {
	return p.Kind.IsOnCurve()
}

// Translated returns the point moved by delta, keeping its identity.
func (p PathPoint) Translated(delta glyphed.Vec2) PathPoint {
	p.Point = p.Point.Add(delta)
	return p
}
