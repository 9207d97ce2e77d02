package adobesign

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type webhookMetrics struct {
	requests metric.Int64Counter
	results  metric.Int64Counter
	rejected metric.Int64Counter
	activity metric.Int64Counter
}

func newWebhookMetrics() webhookMetrics {
	meter := otel.Meter("github.com/fr0stylo/confhub/internal/webhooks/adobesign")
	requests, _ := meter.Int64Counter("confhub.webhook.adobesign.requests")
	results, _ := meter.Int64Counter("confhub.webhook.adobesign.results")
	rejected, _ := meter.Int64Counter("confhub.webhook.adobesign.rejected")
	activity, _ := meter.Int64Counter("confhub.webhook.adobesign.activity_failures")
	return webhookMetrics{
		requests: requests,
		results:  results,
		rejected: rejected,
		activity: activity,
	}
}

func (m webhookMetrics) recordRequest(ctx context.Context, event string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

func (m webhookMetrics) recordResult(ctx context.Context, event, result string) {
	m.results.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", event),
		attribute.String("result", result),
	))
}

func (m webhookMetrics) recordRejected(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m webhookMetrics) recordActivityFailure(ctx context.Context) {
	m.activity.Add(ctx, 1)
}
