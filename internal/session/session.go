// Package session ties the document, undo history, search engine and the
// outside collaborators (content store, clipboard, notices) together. Every
// exported method is one user-level editor operation.
//
// A Session is not safe for concurrent use; the TUI drives it from its
// update loop.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/clipedit/internal/clipboard"
	"github.com/zjrosen/clipedit/internal/document"
	"github.com/zjrosen/clipedit/internal/history"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/search"
	"github.com/zjrosen/clipedit/internal/stats"
	"github.com/zjrosen/clipedit/internal/store"
	"github.com/zjrosen/clipedit/internal/tracing"
)

// ContentStore persists the editor content between runs.
type ContentStore interface {
	Get(ctx context.Context, key string) (store.Entry, error)
	Refresh(ctx context.Context, key string) (store.Entry, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	WriterID() string
}

// Session is one editing session over a single document.
type Session struct {
	doc     *document.Buffer
	history *history.Engine
	search  *search.Engine

	store     ContentStore
	clipboard clipboard.Clipboard
	notifier  notify.Notifier
	tracer    trace.Tracer

	key        string
	maxHistory int
	opened     bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore persists content to s.
func WithStore(s ContentStore) Option {
	return func(sess *Session) { sess.store = s }
}

// WithClipboard sets the clipboard used by Copy and Paste.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(sess *Session) { sess.clipboard = c }
}

// WithNotifier sets where user notices go.
func WithNotifier(n notify.Notifier) Option {
	return func(sess *Session) { sess.notifier = n }
}

// WithTracer wraps operations in spans from t.
func WithTracer(t trace.Tracer) Option {
	return func(sess *Session) { sess.tracer = t }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(sess *Session) { sess.key = key }
}

// WithMaxHistory bounds the undo history.
func WithMaxHistory(n int) Option {
	return func(sess *Session) { sess.maxHistory = n }
}

// New creates a session over an empty document. Call Open before editing.
func New(opts ...Option) *Session {
	s := &Session{
		doc:      document.NewBuffer(""),
		notifier: notify.Discard,
		tracer:   noop.NewTracerProvider().Tracer("noop"),
		key:      store.DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.Discard
	}
	s.history = history.New(s.doc, s.maxHistory)
	s.search = search.New(s.doc, s.history, s.notifier)
	return s
}

// Doc exposes the buffer for caret movement and rendering. Edits made
// directly on it bypass history and persistence.
func (s *Session) Doc() *document.Buffer {
	return s.doc
}

// Open restores stored content and seeds the history with it. A storage
// failure is logged and the session starts empty.
func (s *Session) Open(ctx context.Context) (err error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanOpen, attribute.String(tracing.AttrStoreKey, s.key))
	defer func() { tracing.End(span, err) }()

	if s.opened {
		return history.ErrAlreadyInitialized
	}

	if s.store != nil {
		entry, err := s.store.Get(ctx, s.key)
		switch {
		case err == nil:
			s.doc.SetText(entry.Value)
		case errors.Is(err, store.ErrNotFound):
		default:
			log.ErrorErr(log.CatSession, "Failed to restore content", err, "key", s.key)
		}
	}

	if err := s.history.Init(); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	s.opened = true
	span.SetAttributes(attribute.Int(tracing.AttrTextLength, s.doc.Len()))
	log.Info(log.CatSession, "session opened", "chars", s.doc.Len())
	return nil
}

// Insert types s at the caret, replacing any selection.
func (s *Session) Insert(ctx context.Context, text string) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanEdit, attribute.String("edit.kind", "insert"))
	defer span.End()

	s.doc.Insert(text)
	s.edited(ctx)
}

// Backspace deletes the selection or the rune before the caret.
func (s *Session) Backspace(ctx context.Context) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanEdit, attribute.String("edit.kind", "backspace"))
	defer span.End()

	if s.doc.DeleteBackward() {
		s.edited(ctx)
	}
}

// Delete deletes the selection or the rune after the caret.
func (s *Session) Delete(ctx context.Context) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanEdit, attribute.String("edit.kind", "delete"))
	defer span.End()

	if s.doc.DeleteForward() {
		s.edited(ctx)
	}
}

// edited checkpoints and saves after a keystroke.
func (s *Session) edited(ctx context.Context) {
	s.history.Record(false)
	s.persist(ctx)
}

// SelectAll selects the whole document.
func (s *Session) SelectAll() {
	s.doc.SelectAll()
}

// Stats measures the current text.
func (s *Session) Stats() stats.Stats {
	return stats.Compute(s.doc.Text())
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Text returns the current document text.
func (s *Session) Text() string {
	return s.doc.Text()
}

// persist saves the current text. Failures are logged only.
func (s *Session) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanPersist, attribute.String(tracing.AttrStoreKey, s.key))
	err := s.store.Set(ctx, s.key, s.doc.Text())
	tracing.End(span, err)
	if err != nil {
		log.ErrorErr(log.CatSession, "Failed to save content", err, "key", s.key)
	}
}
