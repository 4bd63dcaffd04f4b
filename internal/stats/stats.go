// Package stats measures editor content for the status bar.
package stats

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Stats summarizes a piece of text.
type Stats struct {
	Characters int `json:"characters"` // runes
	Graphemes  int `json:"graphemes"`  // user-perceived characters
	Lines      int `json:"lines"`
	Width      int `json:"width"` // display width of the widest line
}

// Compute measures text. Empty text has one line.
func Compute(text string) Stats {
	s := Stats{
		Characters: utf8.RuneCountInString(text),
		Graphemes:  uniseg.GraphemeClusterCount(text),
		Lines:      strings.Count(text, "\n") + 1,
	}
	for line := range strings.SplitSeq(text, "\n") {
		s.Width = max(s.Width, runewidth.StringWidth(line))
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("%s · %s · %d cols",
		plural(s.Characters, "char"),
		plural(s.Lines, "line"),
		s.Width)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
