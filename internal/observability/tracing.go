package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName      = "confhub/db"
	handlerTracerName = "confhub/eventbus"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system.name", "sqlite"),
			attribute.String("db.query_name", queryName),
			attribute.String("db.operation", strings.TrimSpace(operation)),
		),
	)
	return ctx, otelSpan{inner: span}
}

// StartHandlerSpan starts a span covering one event handler invocation.
func StartHandlerSpan(ctx context.Context, eventType, handler string) (context.Context, Span) {
	ctx, span := otel.Tracer(handlerTracerName).Start(ctx, "handle "+eventType,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("confhub.event_type", eventType),
			attribute.String("confhub.handler", handler),
		),
	)
	return ctx, otelSpan{inner: span}
}

func (s otelSpan) End() {
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
