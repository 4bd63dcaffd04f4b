package session

import (
	"context"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/clipedit/internal/tracing"
)

// Undo restores the previous snapshot and puts the caret where the text
// changed.
func (s *Session) Undo(ctx context.Context) bool {
	return s.step(ctx, tracing.SpanUndo, s.history.Undo)
}

// Redo reapplies the most recently undone snapshot.
func (s *Session) Redo(ctx context.Context) bool {
	return s.step(ctx, tracing.SpanRedo, s.history.Redo)
}

func (s *Session) step(ctx context.Context, name string, move func() bool) bool {
	ctx, span := tracing.Start(ctx, s.tracer, name)
	defer span.End()

	before := s.doc.Text()
	if !move() {
		return false
	}
	after := s.doc.Text()

	caret := changeCaret(before, after)
	s.doc.SetSelection(caret, caret)
	s.persist(ctx)

	span.SetAttributes(attribute.Int(tracing.AttrHistoryDepth, s.history.UndoDepth()))
	return true
}

// changeCaret returns the rune offset in after just past the first changed
// region between before and after.
func changeCaret(before, after string) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	pos := 0
	changed := false
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if changed {
				return pos
			}
			pos += n
		case diffmatchpatch.DiffInsert:
			return pos + n
		case diffmatchpatch.DiffDelete:
			changed = true
		}
	}
	return pos
}
