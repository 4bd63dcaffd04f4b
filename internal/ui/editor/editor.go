// Package editor renders a document.Buffer as a soft-wrapped text area with
// a caret and selection highlight, and handles caret movement.
//
// Text changes are not made here: the owner routes typing through the
// session so they are recorded and saved.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/clipedit/internal/document"
	"github.com/zjrosen/clipedit/internal/keys"
	"github.com/zjrosen/clipedit/internal/ui/styles"
)

const tabWidth = 4

// Model is the text area view over a buffer it does not own.
type Model struct {
	doc         *document.Buffer
	width       int
	height      int
	offset      int // first visible row
	focused     bool
	placeholder string
}

// row is one visual line: the runes [start, end) of the text, without the
// trailing newline. last is set on the final row of a logical line.
type row struct {
	start, end int
	last       bool
}

// New creates a focused editor over doc.
func New(doc *document.Buffer) Model {
	return Model{
		doc:         doc,
		focused:     true,
		placeholder: "Paste or type text here…",
	}
}

// SetSize sets the text area size in cells.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 2)
	m.height = max(height, 1)
	return m.ScrollToCaret()
}

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

// Focus shows the caret.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur hides the caret.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the editor has focus.
func (m Model) Focused() bool {
	return m.focused
}

// Offset returns the first visible row.
func (m Model) Offset() int {
	return m.offset
}

// Update moves the caret for navigation keys. handled is false for any
// other message so the owner can treat it as an edit.
func (m Model) Update(msg tea.Msg) (_ Model, handled bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	k := keys.Editor
	switch {
	case key.Matches(keyMsg, k.Left):
		m.doc.MoveLeft(false)
	case key.Matches(keyMsg, k.Right):
		m.doc.MoveRight(false)
	case key.Matches(keyMsg, k.Up):
		m.doc.MoveUp(false)
	case key.Matches(keyMsg, k.Down):
		m.doc.MoveDown(false)
	case key.Matches(keyMsg, k.SelectLeft):
		m.doc.MoveLeft(true)
	case key.Matches(keyMsg, k.SelectRight):
		m.doc.MoveRight(true)
	case key.Matches(keyMsg, k.SelectUp):
		m.doc.MoveUp(true)
	case key.Matches(keyMsg, k.SelectDown):
		m.doc.MoveDown(true)
	case key.Matches(keyMsg, k.LineStart):
		m.doc.LineStart(false)
	case key.Matches(keyMsg, k.LineEnd):
		m.doc.LineEnd(false)
	case key.Matches(keyMsg, k.SelectLineStart):
		m.doc.LineStart(true)
	case key.Matches(keyMsg, k.SelectLineEnd):
		m.doc.LineEnd(true)
	case key.Matches(keyMsg, k.PageUp):
		for range m.height {
			m.doc.MoveUp(false)
		}
	case key.Matches(keyMsg, k.PageDown):
		for range m.height {
			m.doc.MoveDown(false)
		}
	default:
		return m, false
	}
	return m.ScrollToCaret(), true
}

// ScrollToCaret adjusts the scroll offset so the caret row is visible.
func (m Model) ScrollToCaret() Model {
	if m.width == 0 {
		return m
	}
	rows := m.layout([]rune(m.doc.Text()))
	cr := caretRow(rows, m.doc.Caret())

	if cr < m.offset {
		m.offset = cr
	}
	if cr >= m.offset+m.height {
		m.offset = cr - m.height + 1
	}
	m.offset = min(m.offset, max(len(rows)-m.height, 0))
	return m
}

// Click moves the caret to the cell at x, y inside the text area.
func (m Model) Click(x, y int) Model {
	text := []rune(m.doc.Text())
	rows := m.layout(text)
	idx := min(m.offset+max(y, 0), len(rows)-1)
	r := rows[idx]

	pos, col := r.start, 0
	for pos < r.end {
		w := cellWidth(text[pos])
		if col+w > x {
			break
		}
		col += w
		pos++
	}
	m.doc.SetCaret(pos)
	return m.ScrollToCaret()
}

// View renders the visible rows, each padded to the editor width.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	text := []rune(m.doc.Text())
	if len(text) == 0 {
		return m.renderEmpty()
	}

	rows := m.layout(text)
	caret := m.doc.Caret()
	selStart, selEnd := m.doc.Selection()
	cr := caretRow(rows, caret)

	lines := make([]string, 0, m.height)
	for i := m.offset; i < len(rows) && len(lines) < m.height; i++ {
		line := m.renderRow(text, rows[i], caret, selStart, selEnd, i == cr)
		lines = append(lines, pad(line, m.width))
	}
	for len(lines) < m.height {
		lines = append(lines, strings.Repeat(" ", m.width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEmpty() string {
	var first string
	if m.focused {
		first = styles.CaretStyle.Render(" ") + styles.PlaceholderStyle.Render(m.placeholder)
	} else {
		first = styles.PlaceholderStyle.Render(m.placeholder)
	}

	lines := []string{pad(first, m.width)}
	for len(lines) < m.height {
		lines = append(lines, strings.Repeat(" ", m.width))
	}
	return strings.Join(lines, "\n")
}

type span struct {
	text  strings.Builder
	style *lipgloss.Style
}

// renderRow groups runes into runs of equal style so each run is styled once.
func (m Model) renderRow(text []rune, r row, caret, selStart, selEnd int, caretHere bool) string {
	var (
		out  strings.Builder
		cur  span
		runs []string
	)
	flush := func() {
		if cur.text.Len() == 0 {
			return
		}
		if cur.style == nil {
			runs = append(runs, cur.text.String())
		} else {
			runs = append(runs, cur.style.Render(cur.text.String()))
		}
		cur.text.Reset()
	}

	for i := r.start; i < r.end; i++ {
		var style *lipgloss.Style
		switch {
		case m.focused && caretHere && i == caret:
			style = &styles.CaretStyle
		case i >= selStart && i < selEnd:
			style = &styles.SelectionStyle
		}
		if style != cur.style {
			flush()
			cur.style = style
		}
		cur.text.WriteString(display(text[i]))
	}
	flush()

	for _, s := range runs {
		out.WriteString(s)
	}
	if m.focused && caretHere && caret == r.end {
		out.WriteString(styles.CaretStyle.Render(" "))
	}
	return out.String()
}

// layout splits text into visual rows no wider than the text area, leaving
// one cell for a caret at the end of a row.
func (m Model) layout(text []rune) []row {
	limit := max(m.width-1, 1)

	var rows []row
	start, col := 0, 0
	for i, r := range text {
		if r == '\n' {
			rows = append(rows, row{start: start, end: i, last: true})
			start, col = i+1, 0
			continue
		}
		w := cellWidth(r)
		if col+w > limit && i > start {
			rows = append(rows, row{start: start, end: i})
			start, col = i, 0
		}
		col += w
	}
	return append(rows, row{start: start, end: len(text), last: true})
}

// caretRow finds the row showing the caret. At a soft wrap the caret
// belongs to the start of the following row.
func caretRow(rows []row, caret int) int {
	for i, r := range rows {
		if caret >= r.start && (caret < r.end || (caret == r.end && r.last)) {
			return i
		}
	}
	return len(rows) - 1
}

func cellWidth(r rune) int {
	if r == '\t' {
		return tabWidth
	}
	return runewidth.RuneWidth(r)
}

func display(r rune) string {
	if r == '\t' {
		return strings.Repeat(" ", tabWidth)
	}
	return string(r)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
