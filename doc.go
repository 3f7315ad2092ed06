// Package glyphed provides the editing-session engine for an interactive
// vector-glyph editor.
//
// # Overview
//
// glyphed is the headless core of a glyph editor: it owns the in-memory
// document model and the algorithms that let a user select, transform, and
// undo edits to curve geometry, resolve spatial hit queries under an
// arbitrary pan/zoom transform, and compute UFO-style kerning adjustments.
// Rendering, window management and on-disk font I/O are supplied by external
// collaborators.
//
// The root package is the geometry kernel: points, affine matrices,
// rectangles, Bezier curves, polynomial root solvers, nearest-point search
// and nonzero-winding containment. Higher layers build on it:
//   - entity: monotonic entity identifiers
//   - font: the shared document store (glyphs, components, kerning tables)
//   - kern: the pure kerning resolver
//   - editor: selection, viewport, undo, hit testing and the edit session
//   - config: editor settings with YAML persistence
//
// # Coordinate Systems
//
// Glyph geometry lives in design space: font units with Y increasing upward.
// The editor.Viewport maps design space to screen space (pixels, Y downward).
// All geometry in this package is coordinate-system agnostic.
//
// # Logging
//
// glyphed produces no log output by default. Call SetLogger to enable
// structured logging via log/slog for the whole module.
package glyphed
