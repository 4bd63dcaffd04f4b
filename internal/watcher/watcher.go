// Package watcher notices when another process writes the content database.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/pubsub"
)

// DefaultDebounce matches storage.watch_debounce.
const DefaultDebounce = 500 * time.Millisecond

// Config holds watcher configuration options.
type Config struct {
	DBPath   string
	Debounce time.Duration
}

// Watcher publishes a ContentChanged event, carrying the database path,
// once writes to the database settle.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dbPath    string
	debounce  time.Duration
	events    pubsub.Publisher[string]
}

// New creates a watcher that publishes to events.
func New(cfg Config, events pubsub.Publisher[string]) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsw,
		dbPath:    cfg.DBPath,
		debounce:  cfg.Debounce,
		events:    events,
	}, nil
}

// Start watches the database directory until ctx ends. SQLite rewrites the
// -wal file rather than the database itself, so the directory is watched.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.dbPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "dir", dir, "debounce", w.debounce)

	go w.loop(ctx)
	return nil
}

// Close releases the fsnotify handle. The loop exits on its own.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	// removed is set when the database file itself went away during the
	// current debounce window.
	var removed bool

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.isRemoval(event) {
				removed = true
				timer.Reset(w.debounce)
			} else if w.isRelevantEvent(event) {
				removed = false
				timer.Reset(w.debounce)
			}

		case <-timer.C:
			if removed {
				removed = false
				log.Debug(log.CatWatcher, "database removed", "path", w.dbPath)
				w.events.Publish(pubsub.ContentRemoved, w.dbPath)
				continue
			}
			log.Debug(log.CatWatcher, "database changed", "path", w.dbPath)
			w.events.Publish(pubsub.ContentChanged, w.dbPath)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)
			w.events.Publish(pubsub.WatchFailed, err.Error())
		}
	}
}

// isRelevantEvent reports writes to the database or its WAL.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	base := filepath.Base(event.Name)
	db := filepath.Base(w.dbPath)
	return base == db || base == db+"-wal"
}

func (w *Watcher) isRemoval(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.dbPath)
}
