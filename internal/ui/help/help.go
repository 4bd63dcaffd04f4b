// Package help contains the help overlay component.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/clipedit/internal/keys"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/ui/markdown"
	"github.com/zjrosen/clipedit/internal/ui/overlay"
	"github.com/zjrosen/clipedit/internal/ui/styles"
)

// section is one titled group of bindings.
type section struct {
	title    string
	bindings []key.Binding
}

func sections() []section {
	a, e := keys.App, keys.Editor
	return []section{
		{"Clipboard", []key.Binding{a.Paste, a.Copy, a.Clear, a.SelectAll}},
		{"History", []key.Binding{a.Undo, a.Redo}},
		{"Find & Replace", []key.Binding{a.Search, a.FindNext, a.FindPrev, a.Replace, a.ReplaceAll, a.ToggleCase, a.ToggleRegex}},
		{"Transform", []key.Binding{a.HalfWidth, a.FullWidth}},
		{"Editing", []key.Binding{e.SelectLeft, e.SelectRight, e.LineStart, e.LineEnd, e.PageUp, e.PageDown}},
		{"General", []key.Binding{a.Help, a.Escape, a.Quit}},
	}
}

// replacementNotes documents what the replace field accepts.
const replacementNotes = "In the replace field `\\n`, `\\t` and `\\r` insert control characters. " +
	"With regex on, `$1`, `$<name>` and `$&` insert captured text."

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(12)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	width    int
	height   int
	markdown bool
	style    string
}

// New creates a help view. With useMarkdown the body is rendered through
// glamour in the given style.
func New(useMarkdown bool, style string) Model {
	return Model{markdown: useMarkdown, style: style}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered in the viewport.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	box := m.renderBox()
	if background == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderBox() string {
	body := m.renderPlain()
	if m.markdown {
		if rendered, err := m.renderMarkdown(); err == nil {
			body = rendered
		} else {
			log.ErrorErr(log.CatUI, "Failed to render help markdown", err)
		}
	}

	body = contentStyle.Render(strings.TrimRight(body, "\n") + "\n" + footerStyle.Render("Press F1 or Esc to close"))
	return boxStyle.Render(titleStyle.Render("Keybindings") + "\n" + body)
}

// Markdown returns the help text as markdown.
func Markdown() string {
	var b strings.Builder
	for _, s := range sections() {
		fmt.Fprintf(&b, "## %s\n\n", s.title)
		for _, binding := range s.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "- **%s** %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(replacementNotes + "\n")
	return b.String()
}

func (m Model) renderMarkdown() (string, error) {
	r, err := markdown.New(m.bodyWidth(), m.style)
	if err != nil {
		return "", err
	}
	return r.Render(Markdown())
}

// renderPlain lays the sections out in two columns.
func (m Model) renderPlain() string {
	all := sections()
	half := (len(all) + 1) / 2

	column := func(secs []section) string {
		var b strings.Builder
		for _, s := range secs {
			b.WriteString(sectionStyle.Render(s.title))
			b.WriteString("\n")
			for _, binding := range s.bindings {
				h := binding.Help()
				b.WriteString(keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n")
			}
		}
		return b.String()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(column(all[:half])),
		column(all[half:]),
	)
}

func (m Model) bodyWidth() int {
	if m.width <= 0 {
		return 60
	}
	return min(max(m.width-8, 20), 80)
}
