package eventbus

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type busMetrics struct {
	invocations metric.Int64Counter
}

func newBusMetrics() busMetrics {
	meter := otel.Meter("github.com/fr0stylo/confhub/internal/eventbus")
	invocations, _ := meter.Int64Counter("confhub.eventbus.handler.invocations")
	return busMetrics{invocations: invocations}
}

func (m busMetrics) recordSuccess(ctx context.Context, eventType, handler string) {
	m.record(ctx, eventType, handler, "success")
}

func (m busMetrics) recordFailure(ctx context.Context, eventType, handler string) {
	m.record(ctx, eventType, handler, "failure")
}

func (m busMetrics) record(ctx context.Context, eventType, handler, outcome string) {
	if m.invocations == nil {
		return
	}
	m.invocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", eventType),
		attribute.String("handler", handler),
		attribute.String("outcome", outcome),
	))
}
