// Package testutil provides helpers shared by package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/clipedit/internal/store"
)

// NewStore opens a fresh SQLite content store in a temp directory. It is
// closed when the test ends.
func NewStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), store.DefaultFileName), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// OpenStoreAt opens a store over an existing database path, as a second
// clipedit instance would.
func OpenStoreAt(t *testing.T, path string, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// SeedContent stores value under the default key.
func SeedContent(t *testing.T, s *store.Store, value string) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), store.DefaultKey, value))
}
