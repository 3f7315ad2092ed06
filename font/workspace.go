package font

import (
	"fmt"
	"sync"

	"github.com/gogpu/glyphed/kern"
)

// Workspace is the shared document store for one font: every glyph, the
// font metrics, and the kerning pair/group tables.
//
// A workspace is shared between the editing session, the renderer, and the
// text-layout collaborator, so access goes through a reader/writer lock:
// many concurrent readers or one exclusive writer. Every method acquires
// the lock for the minimum synchronous duration and releases it before
// returning; no lock is ever held across a call back into UI code.
type Workspace struct {
	mu sync.RWMutex

	familyName string
	styleName  string
	glyphs     map[string]Glyph
	metrics    Metrics
	kerning    kern.Pairs
	groups     kern.Groups
}

// NewWorkspace creates an empty workspace with the given metrics.
func NewWorkspace(familyName, styleName string, metrics Metrics) *Workspace {
	return &Workspace{
		familyName: familyName,
		styleName:  styleName,
		glyphs:     make(map[string]Glyph),
		metrics:    metrics,
		kerning:    make(kern.Pairs),
		groups:     make(kern.Groups),
	}
}

// FamilyName returns the font family name.
func (w *Workspace) FamilyName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.familyName
}

// StyleName returns the font style name.
func (w *Workspace) StyleName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.styleName
}

// Metrics returns the font-wide metrics.
func (w *Workspace) Metrics() Metrics {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.metrics
}

// Glyph returns a deep copy of the named glyph. The copy never aliases the
// store, so callers can hold it without the lock.
func (w *Workspace) Glyph(name string) (Glyph, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.glyphs[name]
	if !ok {
		return Glyph{}, false
	}
	return g.Clone(), true
}

// HasGlyph reports whether the named glyph exists.
func (w *Workspace) HasGlyph(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.glyphs[name]
	return ok
}

// AdvanceWidth returns the advance width of the named glyph.
func (w *Workspace) AdvanceWidth(name string) (float64, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.glyphs[name]
	if !ok {
		return 0, false
	}
	return g.Width, true
}

// GlyphForCodepoint returns the name of a glyph mapped to the codepoint.
func (w *Workspace) GlyphForCodepoint(c rune) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for name, g := range w.glyphs {
		for _, cp := range g.Codepoints {
			if cp == c {
				return name, true
			}
		}
	}
	return "", false
}

// GlyphNames returns the names of all glyphs, in unspecified order.
func (w *Workspace) GlyphNames() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	names := make([]string, 0, len(w.glyphs))
	for name := range w.glyphs {
		names = append(names, name)
	}
	return names
}

// SetGlyph stores a deep copy of the glyph, replacing any previous entry.
// This is the session-to-document sync path.
func (w *Workspace) SetGlyph(g Glyph) error {
	if g.Name == "" {
		return fmt.Errorf("font: glyph has no name")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.glyphs[g.Name] = g.Clone()
	return nil
}

// KernValue resolves the kerning adjustment between two glyphs using the
// workspace tables. leftGroup and rightGroup are optional hints; see
// kern.Lookup.
func (w *Workspace) KernValue(leftGlyph, leftGroup, rightGlyph, rightGroup string) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return kern.Lookup(w.kerning, w.groups, leftGlyph, leftGroup, rightGlyph, rightGroup)
}

// SetKerning replaces the kerning pairs table.
func (w *Workspace) SetKerning(pairs kern.Pairs) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.kerning = pairs
}

// KerningTables returns the kerning pairs and groups. The returned maps are
// the live tables; callers must treat them as read-only.
func (w *Workspace) KerningTables() (kern.Pairs, kern.Groups) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kerning, w.groups
}

// SetGroups replaces the kerning groups table.
func (w *Workspace) SetGroups(groups kern.Groups) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.groups = groups
}

// ReadGlyph gives hit testing raw (uncloned) read access to a glyph while
// fn runs, without copying contours on every pointer move. fn must not
// retain the glyph or anything reachable from it past its return.
//
// A false return means the glyph does not exist; callers treat that as
// "no result" rather than an error, so a momentary miss never interrupts
// interactive editing.
func (w *Workspace) ReadGlyph(name string, fn func(*Glyph)) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.glyphs[name]
	if !ok {
		return false
	}
	fn(&g)
	return true
}
