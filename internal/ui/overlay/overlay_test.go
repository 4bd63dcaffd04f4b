package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func grid(w, h int) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Positions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "center",
			cfg:  Config{Width: 6, Height: 3, Position: Center},
			want: []string{"......", "..XX..", "......"},
		},
		{
			name: "top with padding",
			cfg:  Config{Width: 6, Height: 3, Position: Top, PadY: 1},
			want: []string{"......", "..XX..", "......"},
		},
		{
			name: "bottom",
			cfg:  Config{Width: 6, Height: 3, Position: Bottom},
			want: []string{"......", "......", "..XX.."},
		},
		{
			name: "bottom right",
			cfg:  Config{Width: 6, Height: 3, Position: BottomRight, PadX: 1, PadY: 1},
			want: []string{"......", "...XX.", "......"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.cfg, "XX", grid(6, 3))
			require.Equal(t, tt.want, strings.Split(got, "\n"))
		})
	}
}

func TestPlace_ForegroundLargerThanViewport(t *testing.T) {
	got := Place(Config{Width: 3, Height: 2, Position: Center}, "XXXXX\nXXXXX\nXXXXX", grid(3, 2))

	require.Equal(t, []string{"XXXXX", "XXXXX"}, strings.Split(got, "\n"))
}

func TestPlace_PadsShortBackground(t *testing.T) {
	got := Place(Config{Width: 4, Height: 3, Position: Bottom}, "X", "ab")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "ab", lines[0])
	require.Equal(t, " X  ", lines[2])
}

func TestPlace_KeepsStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("......")
	got := Place(Config{Width: 6, Height: 1, Position: Center}, "XX", styled)

	require.Equal(t, "..XX..", ansi.Strip(got))
	require.Equal(t, 6, ansi.StringWidth(got))
}

func TestPlace_WideRunes(t *testing.T) {
	got := Place(Config{Width: 6, Height: 1, Position: Center}, "日", grid(6, 1))

	require.Equal(t, "..日..", got)
}
