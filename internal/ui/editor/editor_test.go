package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/clipedit/internal/document"
)

func newEditor(text string, width, height int) (Model, *document.Buffer) {
	doc := document.NewBuffer(text)
	return New(doc).SetSize(width, height), doc
}

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func TestLayout_SoftWraps(t *testing.T) {
	m, _ := newEditor("", 6, 3)

	rows := m.layout([]rune("abcdefgh\nij"))

	require.Equal(t, []row{
		{start: 0, end: 5},
		{start: 5, end: 8, last: true},
		{start: 9, end: 11, last: true},
	}, rows)
}

func TestLayout_WideRunes(t *testing.T) {
	m, _ := newEditor("", 5, 3)

	// Each ideograph takes two cells; four cells fit before the caret cell.
	rows := m.layout([]rune("日本語"))

	require.Equal(t, []row{
		{start: 0, end: 2},
		{start: 2, end: 3, last: true},
	}, rows)
}

func TestCaretRow_AtWrapBoundary(t *testing.T) {
	rows := []row{{start: 0, end: 5}, {start: 5, end: 8, last: true}}

	require.Equal(t, 0, caretRow(rows, 4))
	require.Equal(t, 1, caretRow(rows, 5))
	require.Equal(t, 1, caretRow(rows, 8))
}

func TestView_PadsToSize(t *testing.T) {
	m, _ := newEditor("hi\nthere", 10, 4)

	lines := viewLines(m)

	require.Len(t, lines, 4)
	require.Equal(t, "hi        ", lines[0])
	require.Equal(t, "there     ", lines[1])
	for _, l := range lines {
		require.Equal(t, 10, ansi.StringWidth(l))
	}
}

func TestView_Placeholder(t *testing.T) {
	m, _ := newEditor("", 40, 2)

	require.Contains(t, viewLines(m)[0], "Paste or type text here")
}

func TestView_ExpandsTabs(t *testing.T) {
	m, _ := newEditor("a\tb", 20, 1)
	m = m.Blur()

	require.Equal(t, "a    b", strings.TrimRight(viewLines(m)[0], " "))
}

func TestScrollToCaret(t *testing.T) {
	text := "1\n2\n3\n4\n5\n6"
	m, doc := newEditor(text, 10, 3)

	require.Equal(t, 3, m.Offset(), "caret starts at the end")
	require.Equal(t, []string{"4", "5", "6"}, trimmed(viewLines(m)))

	doc.SetCaret(0)
	m = m.ScrollToCaret()
	require.Equal(t, 0, m.Offset())
	require.Equal(t, []string{"1", "2", "3"}, trimmed(viewLines(m)))
}

func TestUpdate_Navigation(t *testing.T) {
	m, doc := newEditor("abc\ndef", 10, 3)

	m, handled := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.True(t, handled)
	require.Equal(t, 3, doc.Caret())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, 0, doc.Caret())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	start, end := doc.Selection()
	require.Equal(t, [2]int{0, 2}, [2]int{start, end})

	_, handled = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.False(t, handled, "typing is left to the owner")
}

func TestClick(t *testing.T) {
	m, doc := newEditor("hello\nworld", 10, 3)

	m = m.Click(2, 1)
	require.Equal(t, 8, doc.Caret())

	m = m.Click(50, 0)
	require.Equal(t, 5, doc.Caret(), "past the end of a row lands at its end")

	_ = m.Click(0, 10)
	require.Equal(t, 6, doc.Caret(), "below the text lands on the last row")
}

func trimmed(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}
