package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"newline", `line1\nline2`, "line1\nline2"},
		{"tab and cr", `a\tb\rc`, "a\tb\rc"},
		{"escaped backslash", `a\\nb`, `a\nb`},
		{"unknown escape kept", `\d+`, `\d+`},
		{"trailing backslash", `end\`, `end\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Unescape(tt.in))
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name   string
		repl   string
		groups int
		want   string
	}{
		{"no dollar", "abc", 2, "abc"},
		{"numbered", "$2-$1", 2, "${2}-${1}"},
		{"whole match", "[$&]", 0, "[${0}]"},
		{"dollar escape", "$$5", 0, "$$5"},
		{"missing group stays literal", "$3", 2, "$$3"},
		{"group zero stays literal", "$0", 1, "$$0"},
		{"two digit group", "$12", 12, "${12}"},
		{"two digit falls back to one", "$12", 1, "${1}2"},
		{"named", "$<year>", 1, "${year}"},
		{"braced", "${year}", 1, "${year}"},
		{"unterminated name", "$<year", 1, "$$<year"},
		{"trailing dollar", "cost$", 0, "cost$$"},
		{"other char", "$x", 0, "$$x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, expandTemplate(tt.repl, tt.groups))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(Query{Term: "(", UseRegex: true})

	var perr *PatternError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "(", perr.Term)
	require.Contains(t, err.Error(), `invalid pattern "("`)
}

func TestEscapeLiteral(t *testing.T) {
	re, err := Compile(Query{Term: `a.b*c`, CaseSensitive: true})
	require.NoError(t, err)

	require.True(t, re.MatchString("xa.b*cx"))
	require.False(t, re.MatchString("aXbbc"))
}
