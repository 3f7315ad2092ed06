package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/entity"
)

// ToolID names the editing tools.
type ToolID int

const (
	ToolSelect ToolID = iota
	ToolPen
	ToolHyperPen
	ToolPreview
	ToolKnife
	ToolMeasure
	ToolShapes
	ToolText
)

func (t ToolID) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPen:
		return "pen"
	case ToolHyperPen:
		return "hyperpen"
	case ToolPreview:
		return "preview"
	case ToolKnife:
		return "knife"
	case ToolMeasure:
		return "measure"
	case ToolShapes:
		return "shapes"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

// PointerEvent is a pointer event in screen coordinates.
type PointerEvent struct {
	Pos        glyphed.Point
	Phase      PointerPhase
	Shift, Cmd bool
	ClickCount int
}

// Key identifies the non-text keys tools react to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyBackspace
	KeyEscape
	KeyReturn
)

// KeyEvent is a keyboard event. Rune carries text input for the text tool
// and is zero for pure navigation keys.
type KeyEvent struct {
	Key        Key
	Rune       rune
	Shift, Cmd bool
}

// Tool turns raw input into session operations. A tool mutates the session
// through its public operations and reports the edit to record; the caller
// feeds that tag to RecordEdit so consecutive drags and nudges group.
type Tool interface {
	ID() ToolID
	// HandlePointer processes a pointer event. The returned EditType is
	// valid only when the bool is true, meaning the event changed the
	// document.
	HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool)
	// HandleKey processes a key event, same contract as HandlePointer.
	HandleKey(s *EditSession, ev KeyEvent) (EditType, bool)

	// isTool seals the interface: the tool set is closed, like Path.
	isTool()
}

// ForID constructs a fresh tool for the given ID.
func ForID(id ToolID) Tool {
	switch id {
	case ToolPen:
		return &PenTool{}
	case ToolHyperPen:
		return &HyperPenTool{}
	case ToolPreview:
		return &PreviewTool{}
	case ToolKnife:
		return &KnifeTool{}
	case ToolMeasure:
		return &MeasureTool{}
	case ToolShapes:
		return &ShapesTool{}
	case ToolText:
		return &TextTool{}
	default:
		return &SelectTool{}
	}
}

// SelectTool selects and drags points and components, and nudges the
// selection from the keyboard.
type SelectTool struct {
	dragging  bool
	dragPoint bool // dragging points (vs. a component)
	lastPos   glyphed.Point
	moved     bool
}

func (*SelectTool) isTool() {}

func (*SelectTool) ID() ToolID { return ToolSelect }

func (t *SelectTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	switch ev.Phase {
	case PointerDown:
		t.lastPos = ev.Pos
		t.moved = false
		if hit, ok := s.HitTestPoint(ev.Pos, DefaultClickDistance); ok {
			if !ev.Shift && !s.Selection().Contains(hit.ID) {
				s.SelectPoint(hit.ID, false)
			} else if ev.Shift {
				s.SelectPoint(hit.ID, true)
			}
			t.dragging = true
			t.dragPoint = true
			return 0, false
		}
		if id, ok := s.HitTestComponent(ev.Pos); ok {
			s.SelectComponent(id)
			t.dragging = true
			t.dragPoint = false
			return 0, false
		}
		s.ClearSelection()
		s.ClearComponentSelection()
		t.dragging = false
		return 0, false

	case PointerMove:
		if !t.dragging {
			return 0, false
		}
		delta := dragDelta(s, t.lastPos, ev.Pos)
		t.lastPos = ev.Pos
		if delta.IsZero() {
			return 0, false
		}
		t.moved = true
		if t.dragPoint {
			s.MoveSelection(delta)
		} else {
			s.MoveSelectedComponent(delta)
		}
		return EditDrag, true

	case PointerUp:
		wasDrag := t.dragging && t.moved
		t.dragging = false
		t.moved = false
		if wasDrag {
			return EditDragUp, true
		}
	}
	return 0, false
}

func (t *SelectTool) HandleKey(s *EditSession, ev KeyEvent) (EditType, bool) {
	switch ev.Key {
	case KeyLeft:
		s.NudgeSelection(-1, 0, ev.Shift, ev.Cmd)
		return EditNudgeLeft, true
	case KeyRight:
		s.NudgeSelection(1, 0, ev.Shift, ev.Cmd)
		return EditNudgeRight, true
	case KeyUp:
		s.NudgeSelection(0, 1, ev.Shift, ev.Cmd)
		return EditNudgeUp, true
	case KeyDown:
		s.NudgeSelection(0, -1, ev.Shift, ev.Cmd)
		return EditNudgeDown, true
	case KeyBackspace:
		if s.Selection().IsEmpty() {
			return 0, false
		}
		s.DeleteSelection()
		return EditNormal, true
	case KeyEscape:
		s.ClearSelection()
		s.ClearComponentSelection()
	}
	return 0, false
}

// dragDelta converts a screen-space pointer move to a design-space delta.
func dragDelta(s *EditSession, from, to glyphed.Point) glyphed.Vec2 {
	a := s.Viewport().ScreenToDesign(from)
	b := s.Viewport().ScreenToDesign(to)
	return b.Sub(a)
}

// PenTool draws cubic paths point by point. Each click appends an on-curve
// point; clicking the path's first point closes it.
type PenTool struct {
	active entity.ID // open path being extended, zero when none
}

func (*PenTool) isTool() {}

func (*PenTool) ID() ToolID { return ToolPen }

func (t *PenTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	if ev.Phase != PointerDown {
		return 0, false
	}
	design := s.SnapPoint(s.Viewport().ScreenToDesign(ev.Pos))
	design.X -= s.ActiveSortXOffset()

	if t.active.IsZero() {
		pt := PathPoint{ID: s.Counter().Next(), Point: design, Kind: OnCurve}
		p := NewCubicPath(s.Counter(), []PathPoint{pt}, false)
		s.AddPath(p)
		s.SelectPoint(pt.ID, false)
		t.active = p.ID()
		return EditNormal, true
	}

	p, ok := findPath(s, t.active)
	if !ok {
		t.active = 0
		return 0, false
	}

	// Clicking the first point closes the path.
	if p.Len() > 2 {
		first := p.Points()[0]
		firstScreen := s.Viewport().ToScreen(glyphed.Point{
			X: first.Point.X + s.ActiveSortXOffset(),
			Y: first.Point.Y,
		})
		if firstScreen.Sub(ev.Pos).Length() <= DefaultClickDistance {
			closed := NewCubicPath(s.Counter(), p.Points(), true)
			s.ReplacePath(t.active, closed)
			s.ClearSelection()
			t.active = 0
			return EditNormal, true
		}
	}

	pt := PathPoint{ID: s.Counter().Next(), Point: design, Kind: OnCurve}
	pts := append(append([]PathPoint(nil), p.Points()...), pt)
	s.ReplacePath(t.active, p.WithPoints(pts))
	s.SelectPoint(pt.ID, false)
	return EditNormal, true
}

func (t *PenTool) HandleKey(s *EditSession, ev KeyEvent) (EditType, bool) {
	if ev.Key == KeyEscape || ev.Key == KeyReturn {
		t.active = 0
		s.ClearSelection()
	}
	return 0, false
}

// HyperPenTool draws hyperbezier paths: every click adds a smooth on-curve
// point (a corner with shift held) and the spline re-solves as it grows.
type HyperPenTool struct {
	active entity.ID
}

func (*HyperPenTool) isTool() {}

func (*HyperPenTool) ID() ToolID { return ToolHyperPen }

func (t *HyperPenTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	if ev.Phase != PointerDown {
		return 0, false
	}
	design := s.SnapPoint(s.Viewport().ScreenToDesign(ev.Pos))
	design.X -= s.ActiveSortXOffset()
	kind := OnCurveSmooth
	if ev.Shift {
		kind = OnCurve
	}

	if t.active.IsZero() {
		pt := PathPoint{ID: s.Counter().Next(), Point: design, Kind: kind}
		p := NewHyperPath(s.Counter(), []PathPoint{pt}, false)
		s.AddPath(p)
		s.SelectPoint(pt.ID, false)
		t.active = p.ID()
		return EditNormal, true
	}

	p, ok := findPath(s, t.active)
	if !ok {
		t.active = 0
		return 0, false
	}

	if p.Len() > 2 {
		first := p.Points()[0]
		firstScreen := s.Viewport().ToScreen(glyphed.Point{
			X: first.Point.X + s.ActiveSortXOffset(),
			Y: first.Point.Y,
		})
		if firstScreen.Sub(ev.Pos).Length() <= DefaultClickDistance {
			closed := NewHyperPath(s.Counter(), p.Points(), true)
			s.ReplacePath(t.active, closed)
			s.ClearSelection()
			t.active = 0
			return EditNormal, true
		}
	}

	pt := PathPoint{ID: s.Counter().Next(), Point: design, Kind: kind}
	pts := append(append([]PathPoint(nil), p.Points()...), pt)
	s.ReplacePath(t.active, p.WithPoints(pts))
	s.SelectPoint(pt.ID, false)
	return EditNormal, true
}

func (t *HyperPenTool) HandleKey(s *EditSession, ev KeyEvent) (EditType, bool) {
	if ev.Key == KeyEscape || ev.Key == KeyReturn {
		t.active = 0
		s.ClearSelection()
	}
	return 0, false
}

// ShapesTool drags out axis-aligned rectangles as closed paths.
type ShapesTool struct {
	dragging bool
	start    glyphed.Point // design space
	active   entity.ID
}

func (*ShapesTool) isTool() {}

func (*ShapesTool) ID() ToolID { return ToolShapes }

func (t *ShapesTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	design := s.SnapPoint(s.Viewport().ScreenToDesign(ev.Pos))
	design.X -= s.ActiveSortXOffset()

	switch ev.Phase {
	case PointerDown:
		t.dragging = true
		t.start = design
		t.active = 0
		return 0, false

	case PointerMove:
		if !t.dragging || design == t.start {
			return 0, false
		}
		rect := rectanglePath(s.Counter(), t.start, design)
		if t.active.IsZero() {
			s.AddPath(rect)
		} else {
			s.ReplacePath(t.active, rect)
		}
		t.active = rect.ID()
		return EditDrag, true

	case PointerUp:
		if !t.dragging {
			return 0, false
		}
		t.dragging = false
		if t.active.IsZero() {
			return 0, false
		}
		t.active = 0
		return EditDragUp, true
	}
	return 0, false
}

func (*ShapesTool) HandleKey(*EditSession, KeyEvent) (EditType, bool) { return 0, false }

func rectanglePath(counter *entity.Counter, a, b glyphed.Point) *CubicPath {
	pts := []PathPoint{
		{ID: counter.Next(), Point: glyphed.Point{X: a.X, Y: a.Y}, Kind: OnCurve},
		{ID: counter.Next(), Point: glyphed.Point{X: b.X, Y: a.Y}, Kind: OnCurve},
		{ID: counter.Next(), Point: glyphed.Point{X: b.X, Y: b.Y}, Kind: OnCurve},
		{ID: counter.Next(), Point: glyphed.Point{X: a.X, Y: b.Y}, Kind: OnCurve},
	}
	return NewCubicPath(counter, pts, true)
}

// PreviewTool shows the filled glyph and makes no edits.
type PreviewTool struct{}

func (*PreviewTool) isTool() {}

func (*PreviewTool) ID() ToolID { return ToolPreview }
func (*PreviewTool) HandlePointer(*EditSession, PointerEvent) (EditType, bool) {
	return 0, false
}
func (*PreviewTool) HandleKey(*EditSession, KeyEvent) (EditType, bool) { return 0, false }

// KnifeTool slices segments: a click on a segment inserts a point at the
// nearest position on it.
type KnifeTool struct{}

func (*KnifeTool) isTool() {}

func (*KnifeTool) ID() ToolID { return ToolKnife }

func (*KnifeTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	if ev.Phase != PointerDown {
		return 0, false
	}
	hit, ok := s.HitTestSegments(ev.Pos, DefaultClickDistance)
	if !ok {
		return 0, false
	}
	if s.InsertPointOnSegment(hit.SegmentInfo, hit.T) {
		return EditNormal, true
	}
	return 0, false
}

func (*KnifeTool) HandleKey(*EditSession, KeyEvent) (EditType, bool) { return 0, false }

// MeasureTool reports the design-space distance of a drag without editing.
type MeasureTool struct {
	dragging bool
	start    glyphed.Point
	end      glyphed.Point
}

func (*MeasureTool) isTool() {}

func (*MeasureTool) ID() ToolID { return ToolMeasure }

func (t *MeasureTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	design := s.Viewport().ScreenToDesign(ev.Pos)
	switch ev.Phase {
	case PointerDown:
		t.dragging = true
		t.start = design
		t.end = design
	case PointerMove:
		if t.dragging {
			t.end = design
		}
	case PointerUp:
		t.dragging = false
		t.end = design
	}
	return 0, false
}

func (*MeasureTool) HandleKey(*EditSession, KeyEvent) (EditType, bool) { return 0, false }

// Distance returns the measured design-space distance.
func (t *MeasureTool) Distance() float64 {
	return t.end.Sub(t.start).Length()
}

// TextTool edits the sort buffer: typing inserts sorts, clicking activates
// the sort under the pointer for outline editing.
type TextTool struct{}

func (*TextTool) isTool() {}

func (*TextTool) ID() ToolID { return ToolText }

func (*TextTool) HandlePointer(s *EditSession, ev PointerEvent) (EditType, bool) {
	if ev.Phase != PointerDown {
		return 0, false
	}
	design := s.Viewport().ScreenToDesign(ev.Pos)
	s.ActivateSortAt(design)
	return 0, false
}

func (*TextTool) HandleKey(s *EditSession, ev KeyEvent) (EditType, bool) {
	if !s.TextModeActive() {
		return 0, false
	}
	buf := s.Buffer()
	if buf == nil {
		return 0, false
	}
	switch ev.Key {
	case KeyBackspace:
		if _, ok := buf.Delete(); ok {
			return EditNormal, true
		}
	case KeyLeft:
		buf.MoveCursorLeft()
	case KeyRight:
		buf.MoveCursorRight()
	case KeyReturn:
		if s.InsertSortForRune('\n') {
			return EditNormal, true
		}
	case KeyEscape:
		s.ExitTextMode()
	default:
		if ev.Rune != 0 && s.InsertSortForRune(ev.Rune) {
			return EditNormal, true
		}
	}
	return 0, false
}

// findPath returns the session path with the given identity.
func findPath(s *EditSession, id entity.ID) (Path, bool) {
	for _, p := range s.Paths() {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}
