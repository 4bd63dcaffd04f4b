package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names, one per session operation.
const (
	SpanPrefixSession = "session."

	SpanOpen       = SpanPrefixSession + "open"
	SpanEdit       = SpanPrefixSession + "edit"
	SpanPaste      = SpanPrefixSession + "paste"
	SpanCopy       = SpanPrefixSession + "copy"
	SpanClear      = SpanPrefixSession + "clear"
	SpanUndo       = SpanPrefixSession + "undo"
	SpanRedo       = SpanPrefixSession + "redo"
	SpanFind       = SpanPrefixSession + "find"
	SpanReplace    = SpanPrefixSession + "replace"
	SpanReplaceAll = SpanPrefixSession + "replace_all"
	SpanTransform  = SpanPrefixSession + "transform"
	SpanReload     = SpanPrefixSession + "reload"
	SpanPersist    = "store.persist"
	SpanStoreLoad  = "store.load"
)

// Attribute keys.
const (
	AttrTextLength    = "text.length"
	AttrSearchRegex   = "search.regex"
	AttrSearchCase    = "search.case_sensitive"
	AttrSearchOutcome = "search.outcome"
	AttrReplaceCount  = "replace.count"
	AttrHistoryDepth  = "history.undo_depth"
	AttrTransformMode = "transform.mode"
	AttrStoreKey      = "store.key"
)

// Start opens an internal span named name.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// End records err (if any) as the span status and ends the span.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
