package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func loadSearch(t *testing.T, path string) SearchConfig {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return cfg.Search
}

func TestSaveSearchOptions_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveSearchOptions(path, SearchConfig{CaseSensitive: true, UseRegex: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# clipedit configuration")
	require.Contains(t, string(data), "Reload content saved by another clipedit")
	require.Equal(t, SearchConfig{CaseSensitive: true, UseRegex: true}, loadSearch(t, path))
}

func TestSaveSearchOptions_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "config.yaml")

	require.NoError(t, SaveSearchOptions(path, SearchConfig{UseRegex: true}))

	require.Equal(t, SearchConfig{UseRegex: true}, loadSearch(t, path))
}

func TestSaveSearchOptions_AddsMissingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  max_entries: 5 # keep it short\n"), 0o600))

	require.NoError(t, SaveSearchOptions(path, SearchConfig{CaseSensitive: true}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "max_entries: 5 # keep it short")
	require.Equal(t, SearchConfig{CaseSensitive: true}, loadSearch(t, path))
}

func TestSaveSearchOptions_RejectsNonMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	require.ErrorContains(t, SaveSearchOptions(path, SearchConfig{}), "not a mapping")
}
