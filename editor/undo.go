package editor

// UndoStack is a grouped snapshot history, generic over the snapshot type.
//
// The stack tracks a "live" slot mirroring the state as of the most recent
// record. AddGroup moves the previous live state onto the undo stack and
// replaces the slot; UpdateCurrent replaces only the slot, so every
// intermediate state of a gesture collapses into the single entry pushed
// when the gesture began. Snapshots are never mutated once pushed.
//
// The caller decides grouping by comparing edit tags (see
// EditType.GroupsWith); the stack itself only stores what it is handed.
type UndoStack[T any] struct {
	undo []T
	redo []T
	live T
}

// NewUndoStack creates a history whose live slot holds the initial state, so
// the very first recorded edit is undoable back to it.
func NewUndoStack[T any](initial T) *UndoStack[T] {
	return &UndoStack[T]{live: initial}
}

// AddGroup starts a new undo group: the previous live state is pushed as a
// new undo entry, the redo stack is cleared, and snapshot becomes live.
func (s *UndoStack[T]) AddGroup(snapshot T) {
	s.undo = append(s.undo, s.live)
	s.redo = nil
	s.live = snapshot
}

// UpdateCurrent replaces the live state without creating a new entry. Used
// mid-gesture so a drag or a run of nudges undoes as one step.
func (s *UndoStack[T]) UpdateCurrent(snapshot T) {
	s.live = snapshot
}

// Undo pops the most recent undo entry, pushes current onto the redo stack,
// and returns the popped state. Returns false when there is nothing to undo.
func (s *UndoStack[T]) Undo(current T) (T, bool) {
	if len(s.undo) == 0 {
		var zero T
		return zero, false
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, current)
	s.live = prev
	return prev, true
}

// Redo pops the most recent redo entry, pushes current onto the undo stack,
// and returns the popped state. Returns false when there is nothing to redo.
func (s *UndoStack[T]) Redo(current T) (T, bool) {
	if len(s.redo) == 0 {
		var zero T
		return zero, false
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, current)
	s.live = next
	return next, true
}

// UndoDepth returns the number of undoable entries.
func (s *UndoStack[T]) UndoDepth() int {
	return len(s.undo)
}

// RedoDepth returns the number of redoable entries.
func (s *UndoStack[T]) RedoDepth() int {
	return len(s.redo)
}
