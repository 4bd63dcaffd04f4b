package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/store"
	"github.com/zjrosen/clipedit/internal/tracing"
)

// Reload pulls content saved by another clipedit instance. Content written
// by this session, or identical to the current text, is ignored. It reports
// whether the document changed.
func (s *Session) Reload(ctx context.Context) (changed bool, err error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanReload)
	defer func() { tracing.End(span, err) }()

	if s.store == nil {
		return false, nil
	}

	var text string
	entry, err := s.store.Refresh(ctx, s.key)
	switch {
	case err == nil:
		if entry.Writer == s.store.WriterID() {
			return false, nil
		}
		text = entry.Value
	case errors.Is(err, store.ErrNotFound):
	default:
		return false, fmt.Errorf("failed to reload content: %w", err)
	}

	if text == s.doc.Text() {
		return false, nil
	}

	caret := s.doc.Caret()
	s.doc.SetText(text)
	s.doc.SetCaret(caret)
	s.history.Record(true)
	s.notifier.Notify(notify.MsgReloaded)
	log.Info(log.CatSession, "reloaded external change", "writer", entry.Writer, "chars", s.doc.Len())
	return true, nil
}
