package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/tracing"
)

var errNoClipboard = errors.New("no clipboard configured")

// Paste replaces the whole document with the clipboard text. When the
// clipboard cannot be read the user is told to paste through the terminal.
func (s *Session) Paste(ctx context.Context) (err error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanPaste)
	defer func() { tracing.End(span, err) }()

	text, err := s.readClipboard(ctx)
	if err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to read clipboard", err)
		s.notifier.Notify(notify.MsgPasteFallback)
		return fmt.Errorf("failed to paste: %w", err)
	}

	s.doc.SetText(text)
	s.history.Record(true)
	s.persist(ctx)
	s.notifier.Notify(notify.MsgPasted)
	return nil
}

// PasteText inserts text delivered by the terminal's bracketed paste at the
// caret and checkpoints it as one step.
func (s *Session) PasteText(ctx context.Context, text string) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanPaste)
	defer span.End()

	s.doc.Insert(text)
	s.history.Record(true)
	s.persist(ctx)
	s.notifier.Notify(notify.MsgPasted)
}

// Copy puts the whole document on the clipboard. On failure everything is
// selected so the user can copy it by hand.
func (s *Session) Copy(ctx context.Context) (err error) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanCopy)
	defer func() { tracing.End(span, err) }()

	if s.clipboard == nil {
		err = errNoClipboard
	} else {
		err = s.clipboard.WriteText(ctx, s.doc.Text())
	}
	if err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to copy", err)
		s.doc.SelectAll()
		s.notifier.Notify(notify.MsgCopyFailed)
		return fmt.Errorf("failed to copy: %w", err)
	}

	s.notifier.Notify(notify.MsgCopied)
	return nil
}

// Clear empties the document and forgets the stored content.
func (s *Session) Clear(ctx context.Context) {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanClear)
	defer span.End()

	s.doc.SetText("")
	s.history.Record(true)
	if s.store != nil {
		if err := s.store.Remove(ctx, s.key); err != nil {
			log.ErrorErr(log.CatSession, "Failed to remove stored content", err, "key", s.key)
		}
	}
	s.notifier.Notify(notify.MsgCleared)
}

func (s *Session) readClipboard(ctx context.Context) (string, error) {
	if s.clipboard == nil {
		return "", errNoClipboard
	}
	return s.clipboard.ReadText(ctx)
}
