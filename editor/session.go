package editor

import (
	"fmt"

	glyphed "github.com/gogpu/glyphed"
	"github.com/gogpu/glyphed/cache"
	"github.com/gogpu/glyphed/config"
	"github.com/gogpu/glyphed/entity"
	"github.com/gogpu/glyphed/font"
)

// outlineCacheSize bounds how many base glyph outlines hit testing keeps
// flattened per session.
const outlineCacheSize = 64

// EditSession is the editing state for one glyph (or, with a sort buffer,
// one line of glyphs with a single active sort). It aggregates the editable
// paths, the point and component selections, the current tool, the viewport,
// and the grouped undo history.
//
// The session is single-threaded: every operation runs to completion on the
// calling goroutine. The one shared structure it touches is the workspace,
// always under that store's own lock and never across a callback.
type EditSession struct {
	glyphName string
	glyph     font.Glyph
	paths     []Path

	selection         Selection
	selectedComponent entity.ID

	tool     Tool
	viewport Viewport
	metrics  font.Metrics
	settings config.Settings

	workspace *font.Workspace
	counter   *entity.Counter

	// flattened base glyph outlines for component hit testing, keyed by
	// glyph name
	outlines *cache.Cache[string, [][]glyphed.Point]

	buffer            *SortBuffer
	textMode          bool
	activeSortIndex   int // -1 when no sort is active
	activeSortXOffset float64
	direction         TextDirection

	undo      *UndoStack[sessionState]
	groupOpen bool
	groupTag  EditType
}

// sessionState is an undo snapshot: the document state plus the active tool
// identity. The viewport and sort buffer stay live across undo. Slices are
// shared with the live session until a mutation replaces them, so snapshots
// are cheap and immutable once pushed.
type sessionState struct {
	glyph             font.Glyph
	paths             []Path
	selection         Selection
	selectedComponent entity.ID
	tool              ToolID
}

// NewSession opens an editing session for the named glyph. The glyph is
// copied out of the workspace; edits flow back only through SyncToWorkspace.
func NewSession(ws *font.Workspace, glyphName string) (*EditSession, error) {
	return newSession(ws, glyphName, false)
}

// NewSessionWithBuffer opens a session whose sort buffer starts with the
// named glyph as its single, active sort, enabling text mode.
func NewSessionWithBuffer(ws *font.Workspace, glyphName string) (*EditSession, error) {
	return newSession(ws, glyphName, true)
}

func newSession(ws *font.Workspace, glyphName string, withBuffer bool) (*EditSession, error) {
	glyph, ok := ws.Glyph(glyphName)
	if !ok {
		return nil, fmt.Errorf("editor: no glyph %q in workspace", glyphName)
	}

	counter := &entity.Counter{}
	paths := make([]Path, 0, len(glyph.Contours))
	for _, c := range glyph.Contours {
		paths = append(paths, PathFromContour(counter, c))
	}

	s := &EditSession{
		glyphName:       glyphName,
		glyph:           glyph,
		paths:           paths,
		tool:            ForID(ToolSelect),
		viewport:        NewViewport(),
		metrics:         ws.Metrics(),
		settings:        config.Default(),
		workspace:       ws,
		counter:         counter,
		outlines:        cache.New[string, [][]glyphed.Point](outlineCacheSize),
		activeSortIndex: -1,
	}
	if withBuffer {
		buf := NewSortBuffer()
		var cp rune
		if len(glyph.Codepoints) > 0 {
			cp = glyph.Codepoints[0]
		}
		buf.Insert(NewGlyphSort(glyphName, cp, glyph.Width, true))
		s.buffer = buf
		s.activeSortIndex = 0
	}
	s.undo = NewUndoStack(s.snapshot())
	return s, nil
}

// SetSettings replaces the session's editor settings.
func (s *EditSession) SetSettings(cfg config.Settings) { s.settings = cfg }

// GlyphName returns the name of the glyph being edited.
func (s *EditSession) GlyphName() string { return s.glyphName }

// Glyph returns the active glyph record (metadata and components).
func (s *EditSession) Glyph() *font.Glyph { return &s.glyph }

// Paths returns the editable paths. Callers must not modify the slice.
func (s *EditSession) Paths() []Path { return s.paths }

// Selection returns the current point selection.
func (s *EditSession) Selection() Selection { return s.selection }

// Metrics returns the font metrics the session was opened with.
func (s *EditSession) Metrics() font.Metrics { return s.metrics }

// Viewport returns the session's viewport for reading and direct
// manipulation (pan, zoom, layout initialization).
func (s *EditSession) Viewport() *Viewport { return &s.viewport }

// Tool returns the current tool.
func (s *EditSession) Tool() Tool { return s.tool }

// SetTool switches to the tool with the given ID.
func (s *EditSession) SetTool(id ToolID) { s.tool = ForID(id) }

// Workspace returns the shared document store, which may be nil.
func (s *EditSession) Workspace() *font.Workspace { return s.workspace }

// LineHeight returns the text layout line height.
func (s *EditSession) LineHeight() float64 { return s.metrics.LineHeight() }

// ActiveSortXOffset is the horizontal design-space offset of the active
// sort; zero outside of multi-glyph editing.
func (s *EditSession) ActiveSortXOffset() float64 { return s.activeSortXOffset }

// Direction returns the detected text direction of the buffer.
func (s *EditSession) Direction() TextDirection { return s.direction }

// snapshot captures the document state. Paths and selection share storage
// with the live session; mutators always replace rather than modify, so the
// snapshot stays stable.
func (s *EditSession) snapshot() sessionState {
	return sessionState{
		glyph:             s.glyph,
		paths:             s.paths,
		selection:         s.selection,
		selectedComponent: s.selectedComponent,
		tool:              s.tool.ID(),
	}
}

func (s *EditSession) restore(st sessionState) {
	s.glyph = st.glyph
	s.paths = st.paths
	s.selection = st.selection
	s.selectedComponent = st.selectedComponent
	// Tools are mutable; restoring constructs a fresh one rather than
	// reviving the pointer the snapshot was taken under.
	if s.tool == nil || s.tool.ID() != st.tool {
		s.tool = ForID(st.tool)
	}
}

// RecordEdit registers a completed edit for undo, tagged for grouping: an
// edit whose tag groups with the open group's tag collapses into it, any
// other tag opens a new group. Call after the mutation.
func (s *EditSession) RecordEdit(t EditType) {
	if s.groupOpen && t.GroupsWith(s.groupTag) {
		s.undo.UpdateCurrent(s.snapshot())
	} else {
		s.undo.AddGroup(s.snapshot())
		s.groupOpen = true
		s.groupTag = t
	}
	glyphed.Logger().Debug("editor: recorded edit", "type", t.String())
}

// Undo restores the state before the most recent edit group. Returns false
// when there is nothing to undo.
func (s *EditSession) Undo() bool {
	prev, ok := s.undo.Undo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(prev)
	s.groupOpen = false
	glyphed.Logger().Debug("editor: undo")
	return true
}

// Redo reapplies the most recently undone edit group. Returns false when
// there is nothing to redo.
func (s *EditSession) Redo() bool {
	next, ok := s.undo.Redo(s.snapshot())
	if !ok {
		return false
	}
	s.restore(next)
	s.groupOpen = false
	glyphed.Logger().Debug("editor: redo")
	return true
}

// SelectPoint sets the selection to the given point, or toggles its
// membership when additive is true. Selecting a point clears any component
// selection.
func (s *EditSession) SelectPoint(id entity.ID, additive bool) {
	s.selectedComponent = 0
	if additive {
		s.selection = s.selection.Toggle(id)
	} else {
		s.selection = NewSelection(id)
	}
}

// ClearSelection empties the point selection.
func (s *EditSession) ClearSelection() {
	s.selection = Selection{}
}

// SelectAll selects every point of every path.
func (s *EditSession) SelectAll() {
	ids := make([]entity.ID, 0, 64)
	for _, p := range s.paths {
		for _, pt := range p.Points() {
			ids = append(ids, pt.ID)
		}
	}
	s.selectedComponent = 0
	s.selection = NewSelection(ids...)
}

// SelectComponent clears the point selection and selects the component.
// Point and component selection are mutually exclusive by construction.
func (s *EditSession) SelectComponent(id entity.ID) {
	s.selection = Selection{}
	s.selectedComponent = id
}

// ClearComponentSelection deselects any selected component.
func (s *EditSession) ClearComponentSelection() {
	s.selectedComponent = 0
}

// SelectedComponent returns the selected component's ID, zero when none.
func (s *EditSession) SelectedComponent() entity.ID {
	return s.selectedComponent
}

// MoveSelection moves the selected points by delta in design units. Moving
// an on-curve point drags its adjacent off-curve handles along, which keeps
// the curve shape through the point.
func (s *EditSession) MoveSelection(delta glyphed.Vec2) {
	if s.selection.IsEmpty() || delta.IsZero() {
		return
	}

	move := s.selection
	for _, p := range s.paths {
		move = collectAdjacentHandles(p, s.selection, move)
	}

	next := make([]Path, len(s.paths))
	for i, p := range s.paths {
		next[i] = p.WithPoints(translatePoints(p.Points(), &move, delta))
	}
	s.paths = next
}

// collectAdjacentHandles adds the off-curve neighbors of selected on-curve
// points to the move set.
func collectAdjacentHandles(p Path, sel Selection, move Selection) Selection {
	pts := p.Points()
	n := len(pts)
	for i, pt := range pts {
		if !pt.IsOnCurve() || !sel.Contains(pt.ID) {
			continue
		}
		if prev, ok := neighborIndex(i, n, p.Closed(), -1); ok && !pts[prev].IsOnCurve() {
			move = move.Insert(pts[prev].ID)
		}
		if next, ok := neighborIndex(i, n, p.Closed(), +1); ok && !pts[next].IsOnCurve() {
			move = move.Insert(pts[next].ID)
		}
	}
	return move
}

func neighborIndex(i, n int, closed bool, step int) (int, bool) {
	j := i + step
	if j >= 0 && j < n {
		return j, true
	}
	if !closed {
		return 0, false
	}
	return ((j % n) + n) % n, true
}

// NudgeSelection moves the selection one keyboard step in the direction
// (dx, dy), each in {-1, 0, 1}. Shift and cmd scale the step per the
// configured nudge distances.
func (s *EditSession) NudgeSelection(dx, dy float64, shift, cmd bool) {
	step := s.settings.Nudge.Base
	switch {
	case cmd:
		step = s.settings.Nudge.Cmd
	case shift:
		step = s.settings.Nudge.Shift
	}
	s.MoveSelection(glyphed.Vec2{X: dx * step, Y: dy * step})
}

// SnapPoint snaps a design-space point to the configured grid. Identity
// when snapping is disabled.
func (s *EditSession) SnapPoint(p glyphed.Point) glyphed.Point {
	if !s.settings.Snap.Enabled || s.settings.Snap.Spacing <= 0 {
		return p
	}
	sp := s.settings.Snap.Spacing
	return glyphed.Point{
		X: roundTo(p.X, sp),
		Y: roundTo(p.Y, sp),
	}
}

func roundTo(v, step float64) float64 {
	n := v / step
	if n >= 0 {
		return float64(int64(n+0.5)) * step
	}
	return float64(int64(n-0.5)) * step
}

// DeleteSelection removes the selected points. A path left with fewer than
// two points is removed entirely. The selection is cleared.
func (s *EditSession) DeleteSelection() {
	if s.selection.IsEmpty() {
		return
	}
	next := make([]Path, 0, len(s.paths))
	for _, p := range s.paths {
		kept := make([]PathPoint, 0, p.Len())
		for _, pt := range p.Points() {
			if !s.selection.Contains(pt.ID) {
				kept = append(kept, pt)
			}
		}
		if len(kept) >= 2 {
			next = append(next, p.WithPoints(kept))
		}
	}
	s.paths = next
	s.selection = Selection{}
}

// ToggleSelectedPointType flips selected on-curve points between smooth and
// corner. Off-curve points are unaffected.
func (s *EditSession) ToggleSelectedPointType() {
	if s.selection.IsEmpty() {
		return
	}
	next := make([]Path, len(s.paths))
	for i, p := range s.paths {
		pts := p.Points()
		out := make([]PathPoint, len(pts))
		for j, pt := range pts {
			if s.selection.Contains(pt.ID) {
				switch pt.Kind {
				case OnCurve:
					pt.Kind = OnCurveSmooth
				case OnCurveSmooth:
					pt.Kind = OnCurve
				}
			}
			out[j] = pt
		}
		next[i] = p.WithPoints(out)
	}
	s.paths = next
}

// ReverseContours reverses the winding direction of every path.
func (s *EditSession) ReverseContours() {
	next := make([]Path, len(s.paths))
	for i, p := range s.paths {
		pts := p.Points()
		out := make([]PathPoint, len(pts))
		for j, pt := range pts {
			out[len(pts)-1-j] = pt
		}
		next[i] = p.WithPoints(out)
	}
	s.paths = next
}

// AddPath appends a path to the document.
func (s *EditSession) AddPath(p Path) {
	next := make([]Path, 0, len(s.paths)+1)
	next = append(next, s.paths...)
	next = append(next, p)
	s.paths = next
}

// ReplacePath swaps the path with the given identity for p. No-op when the
// identity is not present.
func (s *EditSession) ReplacePath(id entity.ID, p Path) {
	for i, old := range s.paths {
		if old.ID() != id {
			continue
		}
		next := make([]Path, len(s.paths))
		copy(next, s.paths)
		next[i] = p
		s.paths = next
		return
	}
}

// Counter returns the session's entity ID source.
func (s *EditSession) Counter() *entity.Counter { return s.counter }

// InsertPointOnSegment splits the segment at parametric position t,
// inserting an on-curve point (and, for curves, the subdivided control
// points). Returns whether a point was inserted.
func (s *EditSession) InsertPointOnSegment(seg SegmentInfo, t float64) bool {
	for i, p := range s.paths {
		if p.ID() != seg.PathID {
			continue
		}
		pts, ok := insertPointOnSegment(s.counter, p, seg, t)
		if !ok {
			return false
		}
		next := make([]Path, len(s.paths))
		copy(next, s.paths)
		next[i] = p.WithPoints(pts)
		s.paths = next
		return true
	}
	return false
}

func insertPointOnSegment(counter *entity.Counter, p Path, seg SegmentInfo, t float64) ([]PathPoint, bool) {
	pts := p.Points()
	n := len(pts)
	if n == 0 || seg.StartIndex >= n {
		return nil, false
	}

	var inserted []PathPoint
	switch c := seg.Curve.(type) {
	case glyphed.Line:
		inserted = []PathPoint{{
			ID:    counter.Next(),
			Point: c.Eval(t),
			Kind:  OnCurve,
		}}
	case glyphed.QuadBez:
		left, right := c.SubdivideAt(t)
		inserted = []PathPoint{
			{ID: counter.Next(), Point: left.P1, Kind: OffCurve},
			{ID: counter.Next(), Point: left.P2, Kind: OnCurve},
			{ID: counter.Next(), Point: right.P1, Kind: OffCurve},
		}
	case glyphed.CubicBez:
		left, right := c.SubdivideAt(t)
		inserted = []PathPoint{
			{ID: counter.Next(), Point: left.P1, Kind: OffCurve},
			{ID: counter.Next(), Point: left.P2, Kind: OffCurve},
			{ID: counter.Next(), Point: left.P3, Kind: OnCurve},
			{ID: counter.Next(), Point: right.P1, Kind: OffCurve},
			{ID: counter.Next(), Point: right.P2, Kind: OffCurve},
		}
	default:
		return nil, false
	}

	// Hyper paths store no control points: keep only the on-curve point.
	if _, isHyper := p.(*HyperPath); isHyper {
		on := inserted[0]
		for _, pt := range inserted {
			if pt.IsOnCurve() {
				on = pt
				break
			}
		}
		on.Kind = OnCurveSmooth
		inserted = []PathPoint{on}
	}

	// The old control points between the endpoints are dropped: everything
	// after the start point up to the end point is replaced by the inserted
	// run. For a closing segment (EndIndex 0) those controls sit at the tail.
	out := make([]PathPoint, 0, n+len(inserted))
	out = append(out, pts[:seg.StartIndex+1]...)
	out = append(out, inserted...)
	if seg.EndIndex > seg.StartIndex {
		out = append(out, pts[seg.EndIndex:]...)
	}
	return out, true
}

// MoveSelectedComponent moves the selected component by delta in design
// space by composing a translation onto its transform. No-op when no
// component is selected.
func (s *EditSession) MoveSelectedComponent(delta glyphed.Vec2) {
	if s.selectedComponent.IsZero() {
		return
	}
	comps := append([]font.Component(nil), s.glyph.Components...)
	for i, c := range comps {
		if c.ID == s.selectedComponent {
			comps[i] = c.Translated(delta.X, delta.Y)
			break
		}
	}
	glyph := s.glyph
	glyph.Components = comps
	s.glyph = glyph
}

// ConvertSelectedHyperToCubic lowers hyper paths to explicit cubic paths:
// with a non-empty selection only hyper paths containing a selected point
// convert, otherwise all of them do. Lowering regenerates point IDs, so the
// selection is cleared whenever any path converts. Returns whether any path
// was converted.
func (s *EditSession) ConvertSelectedHyperToCubic() bool {
	hasSelection := !s.selection.IsEmpty()

	converted := false
	next := make([]Path, len(s.paths))
	for i, p := range s.paths {
		next[i] = p
		hp, ok := p.(*HyperPath)
		if !ok {
			continue
		}
		if hasSelection && !pathContainsSelected(hp, s.selection) {
			continue
		}
		next[i] = hp.ToCubic(s.counter)
		converted = true
	}
	if converted {
		s.paths = next
		s.selection = Selection{}
	}
	return converted
}

func pathContainsSelected(p Path, sel Selection) bool {
	for _, pt := range p.Points() {
		if sel.Contains(pt.ID) {
			return true
		}
	}
	return false
}

// EnterTextMode switches to text buffer editing. No-op without a buffer.
func (s *EditSession) EnterTextMode() {
	if s.buffer != nil {
		s.textMode = true
	}
}

// ExitTextMode returns to single-glyph editing.
func (s *EditSession) ExitTextMode() {
	s.textMode = false
}

// TextModeActive reports whether text buffer editing is active.
func (s *EditSession) TextModeActive() bool { return s.textMode }

// HasTextBuffer reports whether the session has a sort buffer.
func (s *EditSession) HasTextBuffer() bool { return s.buffer != nil }

// Buffer returns the sort buffer, nil outside of text editing sessions.
func (s *EditSession) Buffer() *SortBuffer { return s.buffer }

// InsertSortForRune looks the rune's glyph up in the workspace and inserts
// it at the buffer cursor. Returns false when the session has no buffer or
// the rune has no mapped glyph.
func (s *EditSession) InsertSortForRune(c rune) bool {
	if s.buffer == nil || s.workspace == nil {
		return false
	}
	if c == '\n' {
		s.buffer.Insert(NewLineBreak())
		return true
	}
	name, ok := s.workspace.GlyphForCodepoint(c)
	if !ok {
		return false
	}
	width := 0.0
	// The active sort may carry live edits; prefer its width for the same
	// glyph.
	if name == s.glyphName {
		width = s.glyph.Width
	} else if w, ok := s.workspace.AdvanceWidth(name); ok {
		width = w
	}
	s.buffer.Insert(NewGlyphSort(name, c, width, false))
	s.direction = DetectDirection(s.buffer.Text())
	return true
}

// ActivateSortAt hit tests a design-space position against each glyph
// sort's em box and activates the hit sort, loading its glyph for editing.
// Returns whether a sort was activated.
func (s *EditSession) ActivateSortAt(pos glyphed.Point) bool {
	if s.buffer == nil || s.workspace == nil {
		return false
	}

	found := -1
	var foundName string
	var foundX float64

	x := 0.0
	s.buffer.Each(func(i int, sort Sort) bool {
		if sort.LineBreak {
			x = 0
			return true
		}
		if pos.X >= x && pos.X <= x+sort.AdvanceWidth &&
			pos.Y >= s.metrics.Descender && pos.Y <= s.metrics.Ascender {
			found = i
			foundName = sort.Name
			foundX = x
			return false
		}
		x += sort.AdvanceWidth
		return true
	})
	if found < 0 {
		return false
	}

	glyph, ok := s.workspace.Glyph(foundName)
	if !ok {
		glyphed.Logger().Warn("editor: glyph missing for sort", "glyph", foundName)
		return false
	}

	paths := make([]Path, 0, len(glyph.Contours))
	for _, c := range glyph.Contours {
		paths = append(paths, PathFromContour(s.counter, c))
	}

	s.glyphName = foundName
	s.glyph = glyph
	s.paths = paths
	s.selection = Selection{}
	s.selectedComponent = 0
	s.activeSortIndex = found
	s.activeSortXOffset = foundX
	s.buffer.SetActive(found)
	return true
}

// ToGlyph converts the current editing state back to a glyph record,
// replacing the contours and keeping all other metadata.
func (s *EditSession) ToGlyph() font.Glyph {
	out := s.glyph.Clone()
	contours := make([]font.Contour, 0, len(s.paths))
	for _, p := range s.paths {
		contours = append(contours, p.ToContour())
	}
	out.Contours = contours
	return out
}

// SyncToWorkspace writes the current edits back to the shared store so
// other views of the glyph pick them up. No-op without a workspace.
func (s *EditSession) SyncToWorkspace() error {
	if s.workspace == nil {
		return nil
	}
	updated := s.ToGlyph()
	s.glyph = updated.Clone()
	s.outlines.Delete(updated.Name)
	return s.workspace.SetGlyph(updated)
}
