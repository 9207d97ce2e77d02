package notify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fr0stylo/confhub/internal/ports"
	"github.com/fr0stylo/confhub/internal/ratelimit"
)

const defaultResendURL = "https://api.resend.com"

// EmailConfig configures the Resend transport.
type EmailConfig struct {
	APIKey  string
	BaseURL string
	From    string
	Retry   RetryPolicy
}

// EmailClient sends transactional email through Resend.
type EmailClient struct {
	cfg        EmailConfig
	limiter    ratelimit.Limiter
	httpClient *http.Client
	log        *slog.Logger
}

var _ ports.EmailSender = (*EmailClient)(nil)

// NewEmailClient builds the client. A nil limiter disables throttling.
func NewEmailClient(cfg EmailConfig, limiter ratelimit.Limiter, log *slog.Logger) *EmailClient {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultResendURL
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry = DefaultRetryPolicy
	}
	if log == nil {
		log = slog.Default()
	}
	return &EmailClient{
		cfg:        cfg,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log,
	}
}

// Enabled reports whether an API key is configured.
func (c *EmailClient) Enabled() bool {
	return c != nil && c.cfg.APIKey != ""
}

type resendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type resendEmail struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html,omitempty"`
	Text    string      `json:"text,omitempty"`
	Tags    []resendTag `json:"tags,omitempty"`
}

// Send delivers one email. Without an API key the message is logged and dropped.
func (c *EmailClient) Send(ctx context.Context, email ports.Email) error {
	if strings.TrimSpace(email.To) == "" {
		return errors.New("email recipient is required")
	}
	if !c.Enabled() {
		c.log.InfoContext(ctx, "Email transport disabled; dropping message", "to", email.To, "subject", email.Subject)
		return nil
	}

	body := resendEmail{
		From:    c.cfg.From,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}
	for name, value := range email.Tags {
		body.Tags = append(body.Tags, resendTag{Name: name, Value: value})
	}

	return doWithRetry(ctx, c.cfg.Retry, func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		return doJSON(ctx, c.httpClient, jsonRequest{
			operation: "send email",
			method:    http.MethodPost,
			url:       c.cfg.BaseURL + "/emails",
			token:     c.cfg.APIKey,
			body:      body,
		}, nil)
	})
}
