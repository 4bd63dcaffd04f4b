package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestToFullWidth(t *testing.T) {
	got, changed := ToFullWidth("Abc 123!")

	require.True(t, changed)
	require.Equal(t, "Ａｂｃ １２３!", got, "space and punctuation untouched")
}

func TestToHalfWidth(t *testing.T) {
	got, changed := ToHalfWidth("Ｈｅｌｌｏ　０９！")

	require.True(t, changed)
	require.Equal(t, "Hello　09！", got, "ideographic space and full-width punctuation untouched")
}

func TestNothingToConvert(t *testing.T) {
	_, changed := ToHalfWidth("plain ascii")
	require.False(t, changed)

	_, changed = ToFullWidth("日本語　！")
	require.False(t, changed)

	out, changed := ToFullWidth("")
	require.False(t, changed)
	require.Empty(t, out)
}

func TestWidthRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[A-Za-z0-9 ]{0,32}`).Draw(t, "s")

		wide, _ := ToFullWidth(s)
		back, _ := ToHalfWidth(wide)

		if back != s {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", s, wide, back)
		}
	})
}
