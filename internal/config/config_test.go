package config

import "testing"

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "dev")
	t.Setenv("ADOBE_SIGN_CLIENT_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdobeSign.ClientID != "confhub-local-dev" {
		t.Fatalf("expected local fallback client id, got %q", cfg.AdobeSign.ClientID)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Assets.Backend != AssetBackendSQLite {
		t.Fatalf("unexpected asset backend: got=%q want=%q", cfg.Assets.Backend, AssetBackendSQLite)
	}
	if cfg.Events.GalleryBatchSize != 5 {
		t.Fatalf("unexpected gallery batch size: got=%d want=5", cfg.Events.GalleryBatchSize)
	}
	if cfg.Email.RatePerSecond != 2 || cfg.Email.RateBurst != 2 {
		t.Fatalf("unexpected email rate: got=%v/%d want=2/2", cfg.Email.RatePerSecond, cfg.Email.RateBurst)
	}
}

func TestLoadRequiresClientIDOutsideLocal(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "production")
	t.Setenv("ADOBE_SIGN_CLIENT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing Adobe Sign client id in production")
	}
}

func TestLoadForToolAllowsMissingClientIDOutsideLocal(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "production")
	t.Setenv("ADOBE_SIGN_CLIENT_ID", "")

	cfg, err := LoadForTool()
	if err != nil {
		t.Fatalf("expected no error for tool config load, got %v", err)
	}
	if cfg.AdobeSign.ClientID != "" {
		t.Fatalf("expected empty client id for tool load, got %q", cfg.AdobeSign.ClientID)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "dev")
	t.Setenv("CONFHUB_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected invalid port to be rejected")
	}
}

func TestLoadAssetBackend(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "dev")
	t.Setenv("CONFHUB_ASSET_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected s3 backend without bucket to be rejected")
	}

	t.Setenv("S3_BUCKET", "contracts")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Assets.Backend != AssetBackendS3 || cfg.Assets.Bucket != "contracts" || cfg.Assets.Endpoint != "http://localhost:9000" {
		t.Fatalf("unexpected asset config: %+v", cfg.Assets)
	}

	t.Setenv("CONFHUB_ASSET_BACKEND", "ftp")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to be rejected")
	}
}

func TestLoadClampsGalleryBatchSize(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "dev")
	t.Setenv("CONFHUB_GALLERY_BATCH_SIZE", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Events.GalleryBatchSize != 50 {
		t.Fatalf("unexpected gallery batch size: got=%d want=50", cfg.Events.GalleryBatchSize)
	}
}

func TestLoadParsesOTLPHeadersAndMetricsConsole(t *testing.T) {
	t.Setenv("CONFHUB_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-trace=trace-only")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_HEADERS", "x-metric=metric-only")
	t.Setenv("CONFHUB_OTEL_METRICS_CONSOLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" {
		t.Fatalf("expected common header in trace headers, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPTraceHeaders["x-trace"] != "trace-only" {
		t.Fatalf("expected trace-specific header, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPMetricHeaders["x-metric"] != "metric-only" {
		t.Fatalf("expected metric-specific header, got %#v", cfg.Observability.OTLPMetricHeaders)
	}
	if _, ok := cfg.Observability.OTLPMetricHeaders["x-trace"]; ok {
		t.Fatalf("trace header leaked into metric headers: %#v", cfg.Observability.OTLPMetricHeaders)
	}
}
