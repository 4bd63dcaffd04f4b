package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), DefaultFileName), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultFileName)

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, path, s.Path())
	require.NotEmpty(t, s.WriterID())

	version, dirty, err := (&migrationDriver{db: s.db}).Version()
	require.NoError(t, err)
	require.Equal(t, 2, version)
	require.False(t, dirty)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultFileName)

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, DefaultKey, "persisted"))
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "persisted", got.Value)
	require.Equal(t, first.WriterID(), got.Writer)
	require.NotEqual(t, first.WriterID(), second.WriterID())
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), DefaultKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSet_Overwrites(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1_700_000_000_000)
	s := openTestStore(t, WithWriterID("writer-1"), WithClock(func() time.Time { return now }))

	require.NoError(t, s.Set(ctx, DefaultKey, "one"))
	require.NoError(t, s.Set(ctx, DefaultKey, "two"))

	got, err := s.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, Entry{Key: DefaultKey, Value: "two", Writer: "writer-1", UpdatedAt: now}, got)
}

func TestSet_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, DefaultKey, "one"))
	_, err := s.Get(ctx, DefaultKey)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, DefaultKey, "two"))
	got, err := s.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "two", got.Value)
}

func TestRefresh_SeesOtherWriter(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultFileName)

	mine, err := Open(ctx, path)
	require.NoError(t, err)
	defer mine.Close()
	theirs, err := Open(ctx, path)
	require.NoError(t, err)
	defer theirs.Close()

	require.NoError(t, mine.Set(ctx, DefaultKey, "mine"))
	_, err = mine.Get(ctx, DefaultKey)
	require.NoError(t, err)

	require.NoError(t, theirs.Set(ctx, DefaultKey, "theirs"))

	cached, err := mine.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "mine", cached.Value, "served from cache")

	fresh, err := mine.Refresh(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "theirs", fresh.Value)
	require.Equal(t, theirs.WriterID(), fresh.Writer)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Remove(ctx, DefaultKey), "missing key is fine")
	require.NoError(t, s.Set(ctx, DefaultKey, "x"))
	require.NoError(t, s.Remove(ctx, DefaultKey))

	_, err := s.Get(ctx, DefaultKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCacheDisabled(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, WithCacheTTL(0))

	require.NoError(t, s.Set(ctx, DefaultKey, "unicode ✓ 日本"))
	got, err := s.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "unicode ✓ 日本", got.Value)
}

func TestMigrationDriver_Lock(t *testing.T) {
	d := &migrationDriver{}

	require.NoError(t, d.Lock())
	require.Error(t, d.Lock())
	require.NoError(t, d.Unlock())
	require.Error(t, d.Unlock())
}

func TestMigrationDriver_DropAndMigrateAgain(t *testing.T) {
	s := openTestStore(t)
	d := &migrationDriver{db: s.db}

	require.NoError(t, d.Drop())
	require.NoError(t, migrateUp(s.db))

	require.NoError(t, s.Set(context.Background(), DefaultKey, "after drop"))
}
