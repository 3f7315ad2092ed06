package editor

import (
	"sort"

	"github.com/gogpu/glyphed/entity"
)

// Selection is an immutable sorted set of entity IDs. Operations return a
// new Selection; unchanged selections share storage with their ancestors, so
// undo snapshots hold them without copying.
type Selection struct {
	ids []entity.ID
}

// NewSelection builds a selection from ids, deduplicating and sorting.
func NewSelection(ids ...entity.ID) Selection {
	if len(ids) == 0 {
		return Selection{}
	}
	out := append([]entity.ID(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n := 0
	for i, id := range out {
		if i > 0 && id == out[n-1] {
			continue
		}
		out[n] = id
		n++
	}
	return Selection{ids: out[:n]}
}

// Len returns the number of selected entities.
func (s Selection) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// Contains reports whether id is selected.
func (s Selection) Contains(id entity.ID) bool {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	return i < len(s.ids) && s.ids[i] == id
}

// Insert returns a selection with id added. If id is already present the
// receiver is returned unchanged, sharing storage.
func (s Selection) Insert(id entity.ID) Selection {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	if i < len(s.ids) && s.ids[i] == id {
		return s
	}
	out := make([]entity.ID, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	out = append(out, s.ids[i:]...)
	return Selection{ids: out}
}

// Remove returns a selection with id removed. If id is absent the receiver
// is returned unchanged, sharing storage.
func (s Selection) Remove(id entity.ID) Selection {
	i := sort.Search(len(s.ids), func(i int) bool { return s.ids[i] >= id })
	if i >= len(s.ids) || s.ids[i] != id {
		return s
	}
	out := make([]entity.ID, 0, len(s.ids)-1)
	out = append(out, s.ids[:i]...)
	out = append(out, s.ids[i+1:]...)
	return Selection{ids: out}
}

// Toggle returns a selection with id's membership flipped.
func (s Selection) Toggle(id entity.ID) Selection {
	if s.Contains(id) {
		return s.Remove(id)
	}
	return s.Insert(id)
}

// IDs returns the selected IDs in ascending order. The slice is shared;
// callers must not modify it.
func (s Selection) IDs() []entity.ID {
	return s.ids
}
