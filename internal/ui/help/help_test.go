package help

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSize(t *testing.T) {
	m := New(false, "").SetSize(120, 40)

	m2 := m.SetSize(80, 24)
	assert.Equal(t, 80, m2.width)
	assert.Equal(t, 120, m.width, "SetSize returns a copy")
}

func TestView_Plain(t *testing.T) {
	view := ansi.Strip(New(false, "").SetSize(100, 40).View())

	for _, want := range []string{"Keybindings", "Clipboard", "History", "Find & Replace", "Transform", "General", "ctrl+z", "undo", "F1 or Esc"} {
		assert.Contains(t, view, want)
	}
}

func TestView_Markdown(t *testing.T) {
	view := ansi.Strip(New(true, "dark").SetSize(100, 50).View())

	assert.Contains(t, view, "Find & Replace")
	assert.Contains(t, view, "ctrl+f")
	assert.Contains(t, view, "$1")
}

func TestView_BadMarkdownStyleFallsBackToPlain(t *testing.T) {
	view := ansi.Strip(New(true, "neon").SetSize(100, 40).View())

	assert.Contains(t, view, "Clipboard")
}

func TestMarkdown(t *testing.T) {
	md := Markdown()

	require.Contains(t, md, "## History")
	require.Contains(t, md, "- **ctrl+y** redo")
}

func TestOverlay_OnBackground(t *testing.T) {
	bg := ""
	for i := range 30 {
		if i > 0 {
			bg += "\n"
		}
		bg += "...................................................................................................."
	}

	out := New(false, "").SetSize(100, 30).Overlay(bg)

	assert.Contains(t, ansi.Strip(out), "Keybindings")
}
