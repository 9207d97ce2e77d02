// Command signwebhook sends simulated Adobe Sign callbacks to a running server.
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fr0stylo/confhub/internal/webhooks/adobesign"
)

const webhookPath = "/webhooks/adobe-sign"

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	event := flag.String("event", "", "override the configured event")
	verify := flag.Bool("verify", false, "send the verification GET instead of a delivery")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if strings.TrimSpace(*event) != "" {
		cfg.Event = strings.TrimSpace(*event)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	ctx := context.Background()
	if *verify {
		err = sendVerification(ctx, client, cfg)
	} else {
		err = sendDelivery(ctx, client, cfg)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "webhook error:", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("event", adobesign.EventWorkflowCompleted)
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.ClientID = strings.TrimSpace(cfg.ClientID)
	cfg.AgreementID = strings.TrimSpace(cfg.AgreementID)
	cfg.Event = strings.TrimSpace(cfg.Event)
	cfg.Document = strings.TrimSpace(cfg.Document)

	if cfg.BaseURL == "" || cfg.ClientID == "" || cfg.AgreementID == "" {
		return config{}, fmt.Errorf("config must include base_url, client_id, agreement_id")
	}
	if cfg.Document != "" && !filepath.IsAbs(cfg.Document) {
		cfg.Document = filepath.Join(filepath.Dir(path), cfg.Document)
	}
	return cfg, nil
}

func buildPayload(cfg config) ([]byte, error) {
	body := adobesign.Notification{
		Event:     cfg.Event,
		Agreement: &adobesign.Agreement{ID: cfg.AgreementID},
	}
	if cfg.Event == adobesign.EventWorkflowCompleted {
		switch {
		case cfg.Trimmed:
			body.ConditionalParametersTrimmed = []string{adobesign.SignedDocumentField}
		case cfg.Document != "":
			raw, err := os.ReadFile(cfg.Document)
			if err != nil {
				return nil, fmt.Errorf("failed to read document: %w", err)
			}
			body.Agreement.SignedDocumentInfo = &adobesign.SignedDocumentInfo{
				Document: base64.StdEncoding.EncodeToString(raw),
				MimeType: "application/pdf",
				Name:     filepath.Base(cfg.Document),
			}
		}
	}
	return json.Marshal(body)
}

func sendDelivery(ctx context.Context, client *http.Client, cfg config) error {
	body, err := buildPayload(cfg)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+webhookPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	return send(client, request, cfg)
}

func sendVerification(ctx context.Context, client *http.Client, cfg config) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+webhookPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return send(client, request, cfg)
}

func send(client *http.Client, request *http.Request, cfg config) error {
	request.Header.Set(adobesign.ClientIDHeader, cfg.ClientID)

	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook failed: %s %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	fmt.Printf("Webhook status: %s (agreement %s, event %s)\n", resp.Status, cfg.AgreementID, cfg.Event)
	return nil
}
