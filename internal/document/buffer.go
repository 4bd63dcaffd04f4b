package document

import "strings"

// Buffer is an in-memory Document with the editing primitives a text area
// needs. The selection is kept as anchor (where it started) and head (where
// the caret is); Selection normalizes them.
type Buffer struct {
	runes  []rune
	anchor int
	head   int
}

// Ensure Buffer implements Document.
var _ Document = (*Buffer)(nil)

// NewBuffer creates a buffer holding text with the caret at the end.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.SetText(text)
	return b
}

// Text returns the full document text.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the document length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// SetText replaces the whole text and moves the caret to the end, the way
// assigning a text area's value does.
func (b *Buffer) SetText(text string) {
	b.runes = []rune(text)
	b.anchor = len(b.runes)
	b.head = len(b.runes)
}

// Selection returns the normalized selection range.
func (b *Buffer) Selection() (start, end int) {
	if b.anchor <= b.head {
		return b.anchor, b.head
	}
	return b.head, b.anchor
}

// SetSelection selects [start, end), clamped to the document.
func (b *Buffer) SetSelection(start, end int) {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, start, len(b.runes))
	b.anchor = start
	b.head = end
}

// Caret returns the caret (selection head) offset.
func (b *Buffer) Caret() int {
	return b.head
}

// SetCaret collapses the selection to pos.
func (b *Buffer) SetCaret(pos int) {
	pos = clamp(pos, 0, len(b.runes))
	b.anchor = pos
	b.head = pos
}

// HasSelection reports whether a non-empty range is selected.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.head
}

// SelectedText returns the selected text, or "" for a caret.
func (b *Buffer) SelectedText() string {
	start, end := b.Selection()
	return string(b.runes[start:end])
}

// SelectAll selects the whole document.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.head = len(b.runes)
}

// Insert replaces the selection with s and leaves the caret after it.
func (b *Buffer) Insert(s string) {
	start, end := b.Selection()
	ins := []rune(s)

	out := make([]rune, 0, len(b.runes)-(end-start)+len(ins))
	out = append(out, b.runes[:start]...)
	out = append(out, ins...)
	out = append(out, b.runes[end:]...)

	b.runes = out
	b.SetCaret(start + len(ins))
}

// DeleteBackward removes the selection, or the rune before the caret.
// Returns false when nothing was removed.
func (b *Buffer) DeleteBackward() bool {
	if b.HasSelection() {
		b.Insert("")
		return true
	}
	if b.head == 0 {
		return false
	}
	b.SetSelection(b.head-1, b.head)
	b.Insert("")
	return true
}

// DeleteForward removes the selection, or the rune after the caret.
// Returns false when nothing was removed.
func (b *Buffer) DeleteForward() bool {
	if b.HasSelection() {
		b.Insert("")
		return true
	}
	if b.head >= len(b.runes) {
		return false
	}
	b.SetSelection(b.head, b.head+1)
	b.Insert("")
	return true
}

// moveTo puts the head at pos; without extend the selection collapses.
func (b *Buffer) moveTo(pos int, extend bool) {
	pos = clamp(pos, 0, len(b.runes))
	b.head = pos
	if !extend {
		b.anchor = pos
	}
}

// MoveLeft moves the caret one rune left. A collapsed move out of a
// selection lands on the selection start.
func (b *Buffer) MoveLeft(extend bool) {
	if !extend && b.HasSelection() {
		start, _ := b.Selection()
		b.SetCaret(start)
		return
	}
	b.moveTo(b.head-1, extend)
}

// MoveRight moves the caret one rune right. A collapsed move out of a
// selection lands on the selection end.
func (b *Buffer) MoveRight(extend bool) {
	if !extend && b.HasSelection() {
		_, end := b.Selection()
		b.SetCaret(end)
		return
	}
	b.moveTo(b.head+1, extend)
}

// MoveUp moves the caret to the same column on the previous line.
func (b *Buffer) MoveUp(extend bool) {
	row, col := b.LineCol(b.head)
	if row == 0 {
		b.moveTo(0, extend)
		return
	}
	b.moveTo(b.Offset(row-1, col), extend)
}

// MoveDown moves the caret to the same column on the next line.
func (b *Buffer) MoveDown(extend bool) {
	row, col := b.LineCol(b.head)
	if row >= b.LineCount()-1 {
		b.moveTo(len(b.runes), extend)
		return
	}
	b.moveTo(b.Offset(row+1, col), extend)
}

// LineStart moves the caret to the start of its line.
func (b *Buffer) LineStart(extend bool) {
	row, _ := b.LineCol(b.head)
	b.moveTo(b.Offset(row, 0), extend)
}

// LineEnd moves the caret to the end of its line.
func (b *Buffer) LineEnd(extend bool) {
	row, _ := b.LineCol(b.head)
	b.moveTo(b.Offset(row, len(b.runes)), extend)
}

// LineCount returns the number of lines; an empty document has one.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.runes {
		if r == '\n' {
			n++
		}
	}
	return n
}

// Lines returns the document split on newlines.
func (b *Buffer) Lines() []string {
	return strings.Split(b.Text(), "\n")
}

// LineCol converts an offset to a zero-based line and column.
func (b *Buffer) LineCol(pos int) (row, col int) {
	pos = clamp(pos, 0, len(b.runes))
	for i := 0; i < pos; i++ {
		if b.runes[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}

// Offset converts a line and column back to an offset. The column is
// clamped to the line's length.
func (b *Buffer) Offset(row, col int) int {
	if row < 0 {
		return 0
	}
	lineStart := 0
	for r := 0; r < row; r++ {
		idx := indexRune(b.runes, '\n', lineStart)
		if idx < 0 {
			return len(b.runes)
		}
		lineStart = idx + 1
	}
	lineEnd := indexRune(b.runes, '\n', lineStart)
	if lineEnd < 0 {
		lineEnd = len(b.runes)
	}
	return lineStart + clamp(col, 0, lineEnd-lineStart)
}

func indexRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
