package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fr0stylo/confhub/internal/config"
	"github.com/fr0stylo/confhub/internal/db"
	"github.com/fr0stylo/confhub/internal/docstore/s3assets"
	"github.com/fr0stylo/confhub/internal/docstore/sqlitestore"
	"github.com/fr0stylo/confhub/internal/eventbus"
	"github.com/fr0stylo/confhub/internal/eventhandlers"
	"github.com/fr0stylo/confhub/internal/notify"
	"github.com/fr0stylo/confhub/internal/observability"
	"github.com/fr0stylo/confhub/internal/ratelimit"
	"github.com/fr0stylo/confhub/internal/server"
	"github.com/fr0stylo/confhub/internal/server/routes"
	"github.com/fr0stylo/confhub/internal/webhooks/adobesign"
)

const (
	shutdownTimeout  = 15 * time.Second
	emailLimiterKey  = "confhub:ratelimit:email"
	redisPingTimeout = 3 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	log := slog.New(observability.WrapSlogHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.IsLocalDevelopment() && cfg.AdobeSign.ClientID == "confhub-local-dev" {
		log.Warn("ADOBE_SIGN_CLIENT_ID not set, using local development fallback")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVersion:    cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Error("Failed to flush telemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cfg.Database.LogTiming {
			for _, stat := range database.QueryLatencyStats() {
				log.Info("Query latency", "query", stat.Name, "count", stat.Count, "errors", stat.Errors, "p50", stat.P50, "p95", stat.P95, "max", stat.Max)
			}
		}
		if err := database.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()

	var storeOpts []sqlitestore.Option
	if cfg.Assets.Backend == config.AssetBackendS3 {
		blobs, err := s3assets.New(ctx, s3assets.Config{
			Bucket:   cfg.Assets.Bucket,
			Region:   cfg.Assets.Region,
			Endpoint: cfg.Assets.Endpoint,
			Prefix:   cfg.Assets.Prefix,
		})
		if err != nil {
			return fmt.Errorf("configure s3 assets: %w", err)
		}
		storeOpts = append(storeOpts, sqlitestore.WithBlobStore(blobs))
		log.Info("Signed documents stored in S3", "bucket", cfg.Assets.Bucket)
	}
	store := sqlitestore.New(database, storeOpts...)

	limiter, closeLimiter, err := emailLimiter(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	emailCfg := notify.EmailConfig{APIKey: cfg.Email.APIKey, BaseURL: cfg.Email.APIURL, From: cfg.Email.From}
	email := notify.NewEmailClient(emailCfg, limiter, log)
	if !email.Enabled() {
		log.Warn("RESEND_API_KEY not set, outbound email is disabled")
	}

	bus := eventbus.New(log)
	err = eventhandlers.Initialize(bus, eventhandlers.Dependencies{
		Log:   log,
		Email: email,
		Chat: notify.NewSlackClient(notify.SlackConfig{
			Token:          cfg.Slack.Token,
			BaseURL:        cfg.Slack.APIURL,
			DefaultChannel: cfg.Slack.DefaultChannel,
		}),
		Audience:          notify.NewAudienceClient(emailCfg),
		DefaultAudienceID: cfg.Events.SpeakerAudienceID,
		GalleryBatchSize:  cfg.Events.GalleryBatchSize,
		PublicURL:         cfg.Server.PublicURL,
		RelayURL:          cfg.Events.RelayURL,
	})
	if err != nil {
		return fmt.Errorf("initialize event handlers: %w", err)
	}

	service := adobesign.NewService(cfg.AdobeSign.ClientID, store,
		adobesign.WithPublisher(bus),
		adobesign.WithLogger(log),
	)

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewWebhookRoutes(adobesign.NewHandler(service, log)))

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("Starting server", "port", cfg.Server.Port, "env", cfg.Environment)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down server", "error", err)
	}
	bus.Wait()
	return nil
}

// emailLimiter shares the outbound email budget through Redis when configured.
func emailLimiter(ctx context.Context, log *slog.Logger, cfg config.Config) (ratelimit.Limiter, func(), error) {
	if cfg.Redis.Addr == "" {
		return ratelimit.NewLocal(cfg.Email.RatePerSecond, cfg.Email.RateBurst), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}
	log.Info("Email rate limit shared through Redis", "addr", cfg.Redis.Addr)

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("Failed to close redis client", "error", err)
		}
	}
	return ratelimit.NewRedis(client, emailLimiterKey, cfg.Email.RatePerSecond, cfg.Email.RateBurst), closeFn, nil
}
