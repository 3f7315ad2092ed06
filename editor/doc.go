// Package editor implements the glyph editing session: the mutable document
// model (paths, points, components), selection, viewport mapping, grouped
// undo/redo, spatial hit testing, and the sort buffer for multi-glyph text
// editing.
//
// The session is single-threaded and synchronous. External collaborators
// route pointer and keyboard input into session operations and read the
// session's geometry and viewport back out for painting. The one shared
// structure is the font.Workspace document store, which the session touches
// only under its reader/writer lock.
//
// Mutating operations never modify state in place that an undo snapshot may
// reference: they replace slices and path values wholesale, so snapshots
// stay immutable while sharing storage with the live session until the next
// divergence.
package editor
