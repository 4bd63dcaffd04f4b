package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestPanel_Dimensions(t *testing.T) {
	out := Panel("hello\nworld", "Editor", 20, 5, false)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	for _, line := range lines {
		require.Equal(t, 20, ansi.StringWidth(line))
	}
	require.Contains(t, ansi.Strip(lines[0]), "╭─ Editor ")
	require.Contains(t, ansi.Strip(lines[1]), "hello")
}

func TestPanel_ClipsLongLinesAndExtraRows(t *testing.T) {
	out := Panel(strings.Repeat("x", 50)+"\na\nb\nc", "", 10, 4, true)
	lines := strings.Split(ansi.Strip(out), "\n")

	require.Len(t, lines, 4)
	require.Equal(t, "│xxxxxxxx│", lines[1])
	require.Equal(t, "│a       │", lines[2])
}

func TestPanel_TruncatesTitle(t *testing.T) {
	out := Panel("", "a very long panel title", 12, 3, false)
	top := strings.Split(out, "\n")[0]

	require.Equal(t, 12, ansi.StringWidth(top))
	require.Contains(t, ansi.Strip(top), "…")
}
