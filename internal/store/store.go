// Package store persists editor content in a SQLite key/value table.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/clipedit/internal/cachemanager"
	"github.com/zjrosen/clipedit/internal/log"
)

// DefaultKey is the key editor content is stored under.
const DefaultKey = "editor_content"

// DefaultFileName is the database file name inside the storage directory.
const DefaultFileName = "clipedit.db"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("entry not found")

// Entry is one stored value.
type Entry struct {
	Key       string
	Value     string
	Writer    string
	UpdatedAt time.Time
}

// Store is a SQLite-backed key/value store. Reads go through an in-memory
// cache that every write invalidates.
type Store struct {
	db       *sql.DB
	path     string
	writer   string
	cacheTTL time.Duration
	entries  *cachemanager.ReadThrough[Entry]
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithWriterID overrides the generated writer ID.
func WithWriterID(id string) Option {
	return func(s *Store) { s.writer = id }
}

// WithCacheTTL sets how long reads stay cached. Zero disables the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Store) { s.cacheTTL = ttl }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// DefaultPath returns ~/.config/clipedit/clipedit.db.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, ".config", "clipedit", DefaultFileName)
}

// Open opens (creating if needed) the database at path and applies
// migrations.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dsn := "file:" + path + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{
		db:       db,
		path:     path,
		writer:   uuid.NewString(),
		cacheTTL: cachemanager.DefaultExpiration,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = cachemanager.NewReadThrough[Entry](
		cachemanager.NewInMemory[Entry]("entries", s.cacheTTL, cachemanager.DefaultCleanupInterval),
		s.load,
		s.cacheTTL <= 0,
	)

	log.Info(log.CatStore, "store opened", "path", path, "writer", s.writer)
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// WriterID identifies writes made through this Store.
func (s *Store) WriterID() string {
	return s.writer
}

// Get returns the entry for key, serving from cache when possible.
func (s *Store) Get(ctx context.Context, key string) (Entry, error) {
	return s.entries.Get(ctx, key, s.cacheTTL)
}

// Refresh reads key from the database, bypassing and refilling the cache.
func (s *Store) Refresh(ctx context.Context, key string) (Entry, error) {
	s.entries.Invalidate(ctx, key)
	return s.Get(ctx, key)
}

// Set stores value under key, tagged with this Store's writer ID.
func (s *Store) Set(ctx context.Context, key, value string) error {
	defer s.entries.Invalidate(ctx, key)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (key, value, writer, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			writer = excluded.writer,
			updated_at = excluded.updated_at
	`, key, value, s.writer, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}

	log.Debug(log.CatStore, "stored entry", "key", key, "bytes", len(value))
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	defer s.entries.Invalidate(ctx, key)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	log.Debug(log.CatStore, "removed entry", "key", key)
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) load(ctx context.Context, key string) (Entry, error) {
	var (
		e       Entry
		updated int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT key, value, writer, updated_at FROM entries WHERE key = ?
	`, key).Scan(&e.Key, &e.Value, &e.Writer, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to load %s: %w", key, err)
	}
	e.UpdatedAt = time.UnixMilli(updated)
	return e, nil
}
