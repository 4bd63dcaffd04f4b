// Package document holds the editable text and its caret/selection.
//
// Offsets are rune indices into the text. A selection is the half-open range
// [start, end); an empty selection is a caret.
package document

// Document is the accessor the editing core works through. The core never
// owns the text; it reads and replaces it via this interface.
type Document interface {
	Text() string
	SetText(text string)
	Selection() (start, end int)
	SetSelection(start, end int)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
