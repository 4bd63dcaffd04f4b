package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestApp_HelpTextDefined(t *testing.T) {
	for _, b := range App.Bindings() {
		help := b.Help()
		require.NotEmpty(t, help.Key, "key help should not be empty")
		require.NotEmpty(t, help.Desc, "description help should not be empty for %s", help.Key)
		require.NotEmpty(t, b.Keys())
	}
}

func TestApp_NoDuplicateKeys(t *testing.T) {
	seen := map[string]string{}
	for _, b := range App.Bindings() {
		for _, k := range b.Keys() {
			prev, dup := seen[k]
			require.False(t, dup, "%q bound to both %q and %q", k, prev, b.Help().Desc)
			seen[k] = b.Help().Desc
		}
	}
}

func TestApp_DoesNotStealEditorKeys(t *testing.T) {
	editor := []key.Binding{
		Editor.Up, Editor.Down, Editor.Left, Editor.Right,
		Editor.SelectUp, Editor.SelectDown, Editor.SelectLeft, Editor.SelectRight,
		Editor.LineStart, Editor.LineEnd, Editor.SelectLineStart, Editor.SelectLineEnd,
		Editor.Backspace, Editor.Delete, Editor.Newline, Editor.Tab,
		Editor.PageUp, Editor.PageDown,
	}
	global := map[string]bool{}
	for _, b := range App.Bindings() {
		for _, k := range b.Keys() {
			global[k] = true
		}
	}
	for _, b := range editor {
		for _, k := range b.Keys() {
			require.False(t, global[k], "editor key %q shadowed by a global binding", k)
		}
	}
}

func TestUndoRedoKeys(t *testing.T) {
	require.Equal(t, []string{"ctrl+z"}, App.Undo.Keys())
	require.Equal(t, []string{"ctrl+y"}, App.Redo.Keys())
}

func TestFullHelpCoversShortHelp(t *testing.T) {
	all := map[string]bool{}
	for _, b := range App.Bindings() {
		all[b.Help().Desc] = true
	}
	for _, b := range App.ShortHelp() {
		require.True(t, all[b.Help().Desc], b.Help().Desc)
	}
}
