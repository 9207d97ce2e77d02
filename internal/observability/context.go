package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

const (
	requestIDKey   contextKey = "observability.request_id"
	routeKey       contextKey = "observability.route"
	agreementIDKey contextKey = "observability.agreement_id"
)

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
		attrs = append(attrs, attribute.String("http.route", route))
	}
	setSpanAttributes(ctx, attrs...)
	return ctx
}

// WithAgreementID tags context and current span with the e-signature agreement being processed.
func WithAgreementID(ctx context.Context, agreementID string) context.Context {
	agreementID = strings.TrimSpace(agreementID)
	if agreementID == "" {
		return ctx
	}
	setSpanAttributes(ctx, attribute.String("confhub.agreement_id", agreementID))
	return context.WithValue(ctx, agreementIDKey, agreementID)
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDKey)
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, routeKey)
}

// AgreementIDFromContext extracts the agreement id set by WithAgreementID.
func AgreementIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, agreementIDKey)
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	value, ok := ctx.Value(key).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func setSpanAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	if len(attrs) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(attrs...)
}
