package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fr0stylo/confhub/internal/ports"
)

// AudienceClient manages Resend audience contacts.
type AudienceClient struct {
	apiKey     string
	baseURL    string
	retry      RetryPolicy
	httpClient *http.Client
}

var _ ports.AudienceClient = (*AudienceClient)(nil)

// NewAudienceClient shares the email API key and base URL.
func NewAudienceClient(cfg EmailConfig) *AudienceClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultResendURL
	}
	policy := cfg.Retry
	if policy.Attempts == 0 {
		policy = DefaultRetryPolicy
	}
	return &AudienceClient{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    baseURL,
		retry:      policy,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// ErrAudienceDisabled is returned when no API key is configured.
var ErrAudienceDisabled = errors.New("audience sync not configured")

func (c *AudienceClient) AddContact(ctx context.Context, audienceID string, contact ports.Contact) error {
	if c.apiKey == "" {
		return ErrAudienceDisabled
	}
	if strings.TrimSpace(audienceID) == "" {
		return errors.New("audience id is required")
	}
	body := map[string]any{
		"email":        contact.Email,
		"first_name":   contact.FirstName,
		"last_name":    contact.LastName,
		"unsubscribed": false,
	}
	return doWithRetry(ctx, c.retry, func(ctx context.Context) error {
		return doJSON(ctx, c.httpClient, jsonRequest{
			operation: "add audience contact",
			method:    http.MethodPost,
			url:       fmt.Sprintf("%s/audiences/%s/contacts", c.baseURL, url.PathEscape(audienceID)),
			token:     c.apiKey,
			body:      body,
		}, nil)
	})
}

// RemoveContact deletes email from the audience. A missing contact is not an error.
func (c *AudienceClient) RemoveContact(ctx context.Context, audienceID, email string) error {
	if c.apiKey == "" {
		return ErrAudienceDisabled
	}
	if strings.TrimSpace(audienceID) == "" {
		return errors.New("audience id is required")
	}
	err := doWithRetry(ctx, c.retry, func(ctx context.Context) error {
		return doJSON(ctx, c.httpClient, jsonRequest{
			operation: "remove audience contact",
			method:    http.MethodDelete,
			url:       fmt.Sprintf("%s/audiences/%s/contacts/%s", c.baseURL, url.PathEscape(audienceID), url.PathEscape(email)),
			token:     c.apiKey,
		}, nil)
	})
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return nil
	}
	return err
}
