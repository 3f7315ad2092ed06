package editor

// EditType tags a recorded edit for undo grouping: consecutive edits with
// the same tag collapse into a single undo entry, so a drag or a run of
// arrow-key nudges undoes as one step. Each nudge direction is its own tag,
// which keeps "up up up" as one entry while "up left" becomes two.
type EditType int

const (
	// EditNormal is a discrete edit. Like every other tag it groups only
	// with itself.
	EditNormal EditType = iota
	// EditDrag is an in-progress pointer drag.
	EditDrag
	// EditDragUp ends a drag. It groups with the preceding EditDrag so the
	// release does not create a second entry.
	EditDragUp
	// EditNudgeUp through EditNudgeRight are arrow-key nudges.
	EditNudgeUp
	EditNudgeDown
	EditNudgeLeft
	EditNudgeRight
)

// GroupsWith reports whether an edit tagged t joins an open group tagged
// prev instead of starting a new undo entry.
func (t EditType) GroupsWith(prev EditType) bool {
	if t == EditDragUp {
		return prev == EditDrag || prev == EditDragUp
	}
	return t == prev
}

func (t EditType) String() string {
	switch t {
	case EditNormal:
		return "normal"
	case EditDrag:
		return "drag"
	case EditDragUp:
		return "drag-up"
	case EditNudgeUp:
		return "nudge-up"
	case EditNudgeDown:
		return "nudge-down"
	case EditNudgeLeft:
		return "nudge-left"
	case EditNudgeRight:
		return "nudge-right"
	default:
		return "unknown"
	}
}
