package editor

import (
	glyphed "github.com/gogpu/glyphed"
	"golang.org/x/text/unicode/bidi"
)

// A "sort" is a virtual piece of type: a block carrying one glyph that lines
// up with others to form text, or a line break. The sort buffer is the
// multi-glyph editing surface; exactly one sort at a time may be active
// (open for point editing).

// LayoutMode controls how sorts flow during layout.
type LayoutMode int

const (
	// LayoutLTR flows left to right (Latin scripts).
	LayoutLTR LayoutMode = iota
	// LayoutRTL flows right to left (Arabic, Hebrew).
	LayoutRTL
	// LayoutFreeform positions each sort individually.
	LayoutFreeform
)

// TextDirection is the detected direction of buffer text.
type TextDirection int

const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

// DetectDirection returns the dominant direction of text using the Unicode
// bidirectional algorithm's paragraph direction.
func DetectDirection(text string) TextDirection {
	if text == "" {
		return DirectionLTR
	}
	var p bidi.Paragraph
	p.SetString(text)
	if p.IsLeftToRight() {
		return DirectionLTR
	}
	return DirectionRTL
}

// Sort is one element of the text buffer: a glyph with its metrics, or a
// line break.
type Sort struct {
	// Name is the glyph name; empty for a line break.
	Name string
	// Codepoint is the mapped rune, zero when the glyph has none.
	Codepoint rune
	// AdvanceWidth is the glyph's horizontal advance in design units.
	AdvanceWidth float64
	// LineBreak marks a newline sort; glyph fields are unused.
	LineBreak bool
	// Active marks the sort open for point editing. At most one sort in a
	// buffer is active.
	Active bool
	// Mode is the sort's layout mode.
	Mode LayoutMode
	// Position in design space, assigned during layout.
	Position glyphed.Point
}

// NewGlyphSort creates a glyph sort.
func NewGlyphSort(name string, codepoint rune, advanceWidth float64, active bool) Sort {
	return Sort{Name: name, Codepoint: codepoint, AdvanceWidth: advanceWidth, Active: active}
}

// NewLineBreak creates a line break sort.
func NewLineBreak() Sort {
	return Sort{LineBreak: true}
}

// IsGlyph reports whether the sort carries a glyph.
func (s Sort) IsGlyph() bool {
	return !s.LineBreak
}

// SortBuffer is a gap buffer of sorts. The gap of unused capacity sits at
// the cursor, making insertion and deletion there O(1); moving the gap costs
// the distance moved.
//
// Layout: [elements] [gap] [elements], with
// 0 <= gapStart <= gapEnd <= len(buf) and cursor in [0, Len()].
type SortBuffer struct {
	buf      []Sort
	gapStart int
	gapEnd   int
	cursor   int
}

const initialGapSize = 16

// NewSortBuffer creates an empty buffer.
func NewSortBuffer() *SortBuffer {
	return &SortBuffer{
		buf:    make([]Sort, initialGapSize),
		gapEnd: initialGapSize,
	}
}

// Len returns the number of sorts, excluding the gap.
func (b *SortBuffer) Len() int {
	return len(b.buf) - (b.gapEnd - b.gapStart)
}

// IsEmpty reports whether the buffer holds no sorts.
func (b *SortBuffer) IsEmpty() bool {
	return b.Len() == 0
}

// Cursor returns the logical cursor position.
func (b *SortBuffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping to [0, Len()].
func (b *SortBuffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := b.Len(); pos > n {
		pos = n
	}
	b.cursor = pos
}

// MoveCursorLeft moves the cursor one position left, stopping at 0.
func (b *SortBuffer) MoveCursorLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveCursorRight moves the cursor one position right, stopping at Len().
func (b *SortBuffer) MoveCursorRight() {
	if b.cursor < b.Len() {
		b.cursor++
	}
}

// Insert places a sort at the cursor and advances it.
func (b *SortBuffer) Insert(s Sort) {
	if b.gapStart == b.gapEnd {
		b.growGap()
	}
	b.moveGapTo(b.cursor)
	b.buf[b.gapStart] = s
	b.gapStart++
	b.cursor++
}

// Delete removes the sort before the cursor (backspace). Reports the
// removed sort, or false at the start of the buffer.
func (b *SortBuffer) Delete() (Sort, bool) {
	if b.cursor == 0 {
		return Sort{}, false
	}
	b.moveGapTo(b.cursor)
	b.gapStart--
	b.cursor--
	return b.buf[b.gapStart], true
}

// DeleteForward removes the sort at the cursor (delete key). Reports the
// removed sort, or false at the end of the buffer.
func (b *SortBuffer) DeleteForward() (Sort, bool) {
	if b.cursor >= b.Len() {
		return Sort{}, false
	}
	b.moveGapTo(b.cursor)
	s := b.buf[b.gapEnd]
	b.gapEnd++
	return s, true
}

// Get returns the sort at logical index i.
func (b *SortBuffer) Get(i int) (Sort, bool) {
	if i < 0 || i >= b.Len() {
		return Sort{}, false
	}
	return b.buf[b.physical(i)], true
}

// Set replaces the sort at logical index i.
func (b *SortBuffer) Set(i int, s Sort) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	b.buf[b.physical(i)] = s
	return true
}

// SetActive marks the sort at index i active and every other sort inactive.
func (b *SortBuffer) SetActive(i int) {
	for j := 0; j < b.Len(); j++ {
		p := b.physical(j)
		b.buf[p].Active = j == i
	}
}

// ClearActive marks every sort inactive.
func (b *SortBuffer) ClearActive() {
	for j := 0; j < b.Len(); j++ {
		b.buf[b.physical(j)].Active = false
	}
}

// ActiveIndex returns the index of the active sort, or false if none.
func (b *SortBuffer) ActiveIndex() (int, bool) {
	for j := 0; j < b.Len(); j++ {
		if b.buf[b.physical(j)].Active {
			return j, true
		}
	}
	return 0, false
}

// Clear removes every sort.
func (b *SortBuffer) Clear() {
	b.gapStart = 0
	b.gapEnd = len(b.buf)
	b.cursor = 0
}

// Each calls fn for every sort in order, stopping early if fn returns false.
func (b *SortBuffer) Each(fn func(i int, s Sort) bool) {
	for j := 0; j < b.Len(); j++ {
		if !fn(j, b.buf[b.physical(j)]) {
			return
		}
	}
}

// Text returns the buffer's codepoints as a string, with line breaks as
// newlines. Sorts without a codepoint are skipped.
func (b *SortBuffer) Text() string {
	runes := make([]rune, 0, b.Len())
	b.Each(func(_ int, s Sort) bool {
		switch {
		case s.LineBreak:
			runes = append(runes, '\n')
		case s.Codepoint != 0:
			runes = append(runes, s.Codepoint)
		}
		return true
	})
	return string(runes)
}

// XOffsetAt returns the horizontal design-space offset of the sort at index
// i: the summed advance widths of the glyph sorts before it on its line.
// Line breaks reset the offset to zero.
func (b *SortBuffer) XOffsetAt(i int) float64 {
	x := 0.0
	for j := 0; j < i && j < b.Len(); j++ {
		s := b.buf[b.physical(j)]
		if s.LineBreak {
			x = 0
		} else {
			x += s.AdvanceWidth
		}
	}
	return x
}

// Layout assigns each sort its design-space position: glyph sorts advance
// horizontally, line breaks drop by lineHeight and reset x. RTL sorts
// advance in the negative direction.
func (b *SortBuffer) Layout(lineHeight float64) {
	x, y := 0.0, 0.0
	for j := 0; j < b.Len(); j++ {
		p := b.physical(j)
		s := &b.buf[p]
		if s.LineBreak {
			x = 0
			y -= lineHeight
			s.Position = glyphed.Point{X: x, Y: y}
			continue
		}
		if s.Mode == LayoutRTL {
			x -= s.AdvanceWidth
			s.Position = glyphed.Point{X: x, Y: y}
			continue
		}
		s.Position = glyphed.Point{X: x, Y: y}
		x += s.AdvanceWidth
	}
}

func (b *SortBuffer) physical(i int) int {
	if i < b.gapStart {
		return i
	}
	return i + (b.gapEnd - b.gapStart)
}

// moveGapTo shifts the gap so it starts at the logical position.
func (b *SortBuffer) moveGapTo(pos int) {
	if pos == b.gapStart {
		return
	}
	if pos < b.gapStart {
		n := b.gapStart - pos
		copy(b.buf[b.gapEnd-n:b.gapEnd], b.buf[pos:b.gapStart])
		b.gapEnd -= n
		b.gapStart = pos
	} else {
		n := pos - b.gapStart
		copy(b.buf[b.gapStart:], b.buf[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// growGap doubles the capacity, keeping elements after the gap at the end.
func (b *SortBuffer) growGap() {
	oldLen := len(b.buf)
	newCap := oldLen * 2
	if newCap < initialGapSize {
		newCap = initialGapSize
	}
	next := make([]Sort, newCap)
	copy(next, b.buf[:b.gapStart])
	tail := oldLen - b.gapEnd
	copy(next[newCap-tail:], b.buf[b.gapEnd:])
	b.buf = next
	b.gapEnd = newCap - tail
}
