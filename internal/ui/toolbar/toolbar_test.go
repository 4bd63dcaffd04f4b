package toolbar

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestView_Labels(t *testing.T) {
	view := ansi.Strip(zone.Scan(New(true).View()))

	for _, label := range []string{"Paste", "Copy", "Clear", "Undo", "Redo", "Find", "?"} {
		require.Contains(t, view, label)
	}
}

func TestSetEnabled(t *testing.T) {
	m := New(true)
	require.True(t, m.Enabled(Undo))

	m2 := m.SetEnabled(Undo, false)
	require.False(t, m2.Enabled(Undo))
	require.True(t, m.Enabled(Undo), "SetEnabled returns a copy")

	require.True(t, m2.SetEnabled(Undo, true).Enabled(Undo))
}

func TestUpdate_IgnoresNonClicks(t *testing.T) {
	m := New(true)

	require.Nil(t, m.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Nil(t, m.Update(tea.MouseMsg{Action: tea.MouseActionMotion}))
}

func TestUpdate_NotClickable(t *testing.T) {
	m := New(false)

	require.Nil(t, m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
}
