package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/clipedit/internal/notify"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("Hello", StyleSuccess, time.Second)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Equal(t, "Hello", m.Message())
	assert.Contains(t, m.View(), "✓ Hello")
	assert.Contains(t, m.View(), "╭")
}

func TestShow_ReplacesExisting(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess, time.Second)
	m, _ = m.Show("Second", StyleError, time.Second)

	assert.Contains(t, m.View(), "✗ Second")
	assert.NotContains(t, m.View(), "First")
}

func TestUpdate_DismissMatchingSeq(t *testing.T) {
	m, _ := New().Show("First", StyleSuccess, time.Second)
	first := m.seq
	m, _ = m.Show("Second", StyleInfo, time.Second)

	m = m.Update(DismissMsg{Seq: first})
	assert.True(t, m.Visible(), "stale dismiss must not hide the newer toast")

	m = m.Update(DismissMsg{Seq: m.seq})
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestView_Icons(t *testing.T) {
	tests := []struct {
		style Style
		icon  string
	}{
		{StyleSuccess, "✓"},
		{StyleError, "✗"},
		{StyleInfo, "i "},
		{StyleWarn, "!"},
	}
	for _, tt := range tests {
		m, _ := New().Show("msg", tt.style, time.Second)
		assert.Contains(t, m.View(), tt.icon)
	}
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, StyleError, StyleFor(notify.MsgCopyFailed))
	assert.Equal(t, StyleError, StyleFor(notify.MsgInvalidPattern))
	assert.Equal(t, StyleWarn, StyleFor(notify.MsgPasteFallback))
	assert.Equal(t, StyleInfo, StyleFor(notify.MsgNotFound))
	assert.Equal(t, StyleSuccess, StyleFor(notify.MsgCopied))
	assert.Equal(t, StyleSuccess, StyleFor(notify.Replaced(2)))
}

func TestOverlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 8), "\n")

	hidden := New()
	assert.Equal(t, bg, hidden.Overlay(bg, 30, 8))

	m, _ := New().Show("Copied", StyleSuccess, time.Second)
	out := ansi.Strip(m.Overlay(bg, 30, 8))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 8)
	assert.Contains(t, lines[5], "Copied")
	assert.True(t, strings.HasSuffix(lines[5], "│."), "toast sits one column from the right edge")
	assert.Equal(t, strings.Repeat(".", 30), lines[7])
}

func TestView_WrapsLongMessages(t *testing.T) {
	long := strings.Repeat("word ", 30)
	m, _ := New().Show(long, StyleError, time.Second)

	lines := strings.Split(m.View(), "\n")

	require.Greater(t, len(lines), 3, "border plus more than one text row")
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), maxTextWidth+4)
	}
}
