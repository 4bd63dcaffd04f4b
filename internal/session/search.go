package session

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/clipedit/internal/search"
	"github.com/zjrosen/clipedit/internal/tracing"
)

func queryAttrs(q search.Query) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(tracing.AttrSearchRegex, q.UseRegex),
		attribute.Bool(tracing.AttrSearchCase, q.CaseSensitive),
	}
}

// Find selects the next match, or the previous one when backward is set.
func (s *Session) Find(ctx context.Context, q search.Query, backward bool) search.Outcome {
	_, span := tracing.Start(ctx, s.tracer, tracing.SpanFind, queryAttrs(q)...)
	defer span.End()

	out := s.search.Find(q, backward, false)
	span.SetAttributes(attribute.String(tracing.AttrSearchOutcome, out.String()))
	return out
}

// Replace substitutes the selection if it is a match and selects the next
// one.
func (s *Session) Replace(ctx context.Context, r search.ReplaceRequest) search.ReplaceResult {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanReplace, queryAttrs(r.Query)...)
	defer span.End()

	res := s.search.Replace(r)
	if res.Outcome == search.Replaced {
		s.persist(ctx)
	}
	span.SetAttributes(attribute.String(tracing.AttrSearchOutcome, res.Outcome.String()))
	return res
}

// ReplaceAll substitutes every match.
func (s *Session) ReplaceAll(ctx context.Context, r search.ReplaceRequest) search.ReplaceAllResult {
	ctx, span := tracing.Start(ctx, s.tracer, tracing.SpanReplaceAll, queryAttrs(r.Query)...)
	defer span.End()

	res := s.search.ReplaceAll(r)
	if res.Outcome == search.Replaced {
		s.persist(ctx)
	}
	span.SetAttributes(
		attribute.String(tracing.AttrSearchOutcome, res.Outcome.String()),
		attribute.Int(tracing.AttrReplaceCount, res.Count),
	)
	return res
}
