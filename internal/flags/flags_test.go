package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "default on",
			registry: New(nil),
			flag:     FlagMouseToolbar,
			expected: true,
		},
		{
			name:     "config overrides default",
			registry: New(map[string]bool{FlagMarkdownHelp: false}),
			flag:     FlagMarkdownHelp,
			expected: false,
		},
		{
			name:     "extra flag from config",
			registry: New(map[string]bool{"experimental": true}),
			flag:     "experimental",
			expected: true,
		},
		{
			name:     "unknown flag returns false",
			registry: New(nil),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagMouseToolbar,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_AllIsCopy(t *testing.T) {
	r := New(nil)

	all := r.All()
	all[FlagMouseToolbar] = false

	require.True(t, r.Enabled(FlagMouseToolbar))
	require.Empty(t, (*Registry)(nil).All())
}
