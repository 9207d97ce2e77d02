package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	AssetBackendSQLite = "sqlite"
	AssetBackendS3     = "s3"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	Observability ObservabilityConfig
	AdobeSign     AdobeSignConfig
	Assets        AssetsConfig
	Email         EmailConfig
	Redis         RedisConfig
	Slack         SlackConfig
	Events        EventsConfig
}

type ServerConfig struct {
	Port      int
	PublicURL string
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

type AdobeSignConfig struct {
	ClientID string
}

type AssetsConfig struct {
	Backend  string
	Bucket   string
	Region   string
	Endpoint string
	Prefix   string
}

type EmailConfig struct {
	APIKey        string
	APIURL        string
	From          string
	RatePerSecond float64
	RateBurst     int
}

// RedisConfig enables the shared outbound rate limiter when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SlackConfig struct {
	Token          string
	APIURL         string
	DefaultChannel string
}

type EventsConfig struct {
	SpeakerAudienceID string
	GalleryBatchSize  int
	RelayURL          string
}

func Load() (Config, error) {
	return load(true)
}

// LoadForTool loads config for CLI tools that never receive webhook callbacks.
func LoadForTool() (Config, error) {
	return load(false)
}

func load(requireClientID bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("confhub_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("confhub_port", 8080)
	v.SetDefault("confhub_public_url", "")
	v.SetDefault("confhub_db_path", "data/confhub")
	v.SetDefault("confhub_db_timing", false)
	v.SetDefault("confhub_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "confhub")
	v.SetDefault("confhub_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("confhub_otel_sampling_ratio", 1.0)
	v.SetDefault("confhub_otel_metrics_console", false)
	v.SetDefault("adobe_sign_client_id", "")
	v.SetDefault("confhub_asset_backend", AssetBackendSQLite)
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("s3_prefix", "")
	v.SetDefault("resend_api_key", "")
	v.SetDefault("resend_api_url", "https://api.resend.com")
	v.SetDefault("email_from", "")
	v.SetDefault("email_rate_per_second", 2.0)
	v.SetDefault("email_rate_burst", 2)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("slack_bot_token", "")
	v.SetDefault("slack_api_url", "https://slack.com/api")
	v.SetDefault("slack_default_channel", "")
	v.SetDefault("confhub_speaker_audience_id", "")
	v.SetDefault("confhub_gallery_batch_size", 5)
	v.SetDefault("confhub_event_relay_url", "")

	env := resolveEnvironment(v)
	port := v.GetInt("confhub_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid CONFHUB_PORT: %d", port)
	}

	samplingRatio := v.GetFloat64("confhub_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	batchSize := v.GetInt("confhub_gallery_batch_size")
	if batchSize <= 0 {
		batchSize = 5
	}
	if batchSize > 50 {
		batchSize = 50
	}

	ratePerSecond := v.GetFloat64("email_rate_per_second")
	if ratePerSecond < 0 {
		ratePerSecond = 0
	}
	rateBurst := v.GetInt("email_rate_burst")
	if rateBurst <= 0 {
		rateBurst = 1
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("confhub_asset_backend")))
	switch backend {
	case "", AssetBackendSQLite:
		backend = AssetBackendSQLite
	case AssetBackendS3:
		if strings.TrimSpace(v.GetString("s3_bucket")) == "" {
			return Config{}, fmt.Errorf("S3_BUCKET is required when CONFHUB_ASSET_BACKEND=s3")
		}
	default:
		return Config{}, fmt.Errorf("invalid CONFHUB_ASSET_BACKEND: %q", backend)
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "confhub"
	}

	serviceVersion := strings.TrimSpace(v.GetString("confhub_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otlpMetricHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))
	metricsConsole := v.GetBool("confhub_otel_metrics_console")
	otelEnabled := v.GetBool("confhub_otel_enabled") || otlpEndpoint != "" || metricsConsole

	cfg := Config{
		Environment: env,
		Server: ServerConfig{
			Port:      port,
			PublicURL: strings.TrimRight(strings.TrimSpace(v.GetString("confhub_public_url")), "/"),
		},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("confhub_db_path")),
			LogTiming: v.GetBool("confhub_db_timing"),
		},
		Observability: ObservabilityConfig{
			Enabled:           otelEnabled,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpMetricHeaders),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
		AdobeSign: AdobeSignConfig{
			ClientID: strings.TrimSpace(v.GetString("adobe_sign_client_id")),
		},
		Assets: AssetsConfig{
			Backend:  backend,
			Bucket:   strings.TrimSpace(v.GetString("s3_bucket")),
			Region:   strings.TrimSpace(v.GetString("s3_region")),
			Endpoint: strings.TrimSpace(v.GetString("s3_endpoint")),
			Prefix:   strings.TrimSpace(v.GetString("s3_prefix")),
		},
		Email: EmailConfig{
			APIKey:        strings.TrimSpace(v.GetString("resend_api_key")),
			APIURL:        strings.TrimRight(strings.TrimSpace(v.GetString("resend_api_url")), "/"),
			From:          strings.TrimSpace(v.GetString("email_from")),
			RatePerSecond: ratePerSecond,
			RateBurst:     rateBurst,
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(v.GetString("redis_addr")),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		Slack: SlackConfig{
			Token:          strings.TrimSpace(v.GetString("slack_bot_token")),
			APIURL:         strings.TrimRight(strings.TrimSpace(v.GetString("slack_api_url")), "/"),
			DefaultChannel: strings.TrimSpace(v.GetString("slack_default_channel")),
		},
		Events: EventsConfig{
			SpeakerAudienceID: strings.TrimSpace(v.GetString("confhub_speaker_audience_id")),
			GalleryBatchSize:  batchSize,
			RelayURL:          strings.TrimSpace(v.GetString("confhub_event_relay_url")),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/confhub"
	}
	if requireClientID && !cfg.IsLocalDevelopment() && cfg.AdobeSign.ClientID == "" {
		return Config{}, fmt.Errorf("ADOBE_SIGN_CLIENT_ID is required outside local/dev environments")
	}
	if cfg.IsLocalDevelopment() && cfg.AdobeSign.ClientID == "" {
		cfg.AdobeSign.ClientID = "confhub-local-dev"
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"confhub_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
