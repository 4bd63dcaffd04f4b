package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := New(40, "dark")
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())

	out, err := r.Render("# Keys\n\n- **ctrl+z** undo\n")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	require.Contains(t, plain, "Keys")
	require.Contains(t, plain, "ctrl+z")
}

func TestNew_Styles(t *testing.T) {
	_, err := New(40, "")
	require.NoError(t, err)

	_, err = New(40, "light")
	require.NoError(t, err)

	_, err = New(40, "neon")
	require.Error(t, err)
}
