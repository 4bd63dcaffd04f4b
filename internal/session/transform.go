package session

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/tracing"
	"github.com/zjrosen/clipedit/internal/transform"
)

// ToHalfWidth converts full-width letters and digits in the whole document.
func (s *Session) ToHalfWidth(ctx context.Context) bool {
	return s.convert(ctx, "half", transform.ToHalfWidth, notify.MsgToHalfWidth)
}

// ToFullWidth converts ASCII letters and digits in the whole document.
func (s *Session) ToFullWidth(ctx context.Context) bool {
	return s.convert(ctx, "full", transform.ToFullWidth, notify.MsgToFullWidth)
}

func (s *Session) convert(ctx context.Context, mode string, fn func(string) (string, bool), done string) bool {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanTransform, attribute.String(tracing.AttrTransformMode, mode))
	defer span.End()

	converted, changed := fn(s.doc.Text())
	if !changed {
		s.notifier.Notify(notify.MsgNothingToChange)
		return false
	}

	// Conversion is rune for rune, so the selection still lines up.
	start, end := s.doc.Selection()
	s.doc.SetText(converted)
	s.doc.SetSelection(start, end)

	s.history.Record(true)
	s.persist(ctx)
	s.notifier.Notify(done)
	return true
}
