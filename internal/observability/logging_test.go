package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapSlogHandlerAddsRequestMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestMetadata(context.Background(), "req-1", "/webhooks/adobe-sign")
	log.InfoContext(ctx, "hello")

	out := buf.String()
	if !strings.Contains(out, "request_id=req-1") {
		t.Fatalf("expected request id in log line, got %q", out)
	}
	if !strings.Contains(out, "route=/webhooks/adobe-sign") {
		t.Fatalf("expected route in log line, got %q", out)
	}
}

func TestWrapSlogHandlerSkipsEmptyMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))
	log.InfoContext(WithRequestMetadata(context.Background(), " ", ""), "plain")

	if strings.Contains(buf.String(), "request_id") || strings.Contains(buf.String(), "route=") {
		t.Fatalf("expected no metadata attrs, got %q", buf.String())
	}
}

func TestAgreementIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithAgreementID(context.Background(), "  agr-9 ")
	got, ok := AgreementIDFromContext(ctx)
	if !ok || got != "agr-9" {
		t.Fatalf("unexpected agreement id: got=%q ok=%v", got, ok)
	}
	if _, ok := AgreementIDFromContext(WithAgreementID(context.Background(), "")); ok {
		t.Fatal("expected empty agreement id to be ignored")
	}
}
