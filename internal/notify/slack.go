package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fr0stylo/confhub/internal/ports"
)

const defaultSlackURL = "https://slack.com/api"

// SlackConfig configures the Slack Web API transport.
type SlackConfig struct {
	Token          string
	BaseURL        string
	DefaultChannel string
}

// SlackClient posts messages with chat.postMessage. It never retries.
type SlackClient struct {
	cfg        SlackConfig
	httpClient *http.Client
}

var _ ports.ChatNotifier = (*SlackClient)(nil)

// ErrChatDisabled is returned when no bot token is configured.
var ErrChatDisabled = errors.New("chat notifications not configured")

func NewSlackClient(cfg SlackConfig) *SlackClient {
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultSlackURL
	}
	return &SlackClient{cfg: cfg, httpClient: &http.Client{Timeout: defaultTimeout}}
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackBlock struct {
	Type string    `json:"type"`
	Text slackText `json:"text"`
}

type slackResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// PostMessage posts to channel, or to the default channel when channel is empty.
func (c *SlackClient) PostMessage(ctx context.Context, channel string, message ports.ChatMessage) error {
	if c.cfg.Token == "" {
		return ErrChatDisabled
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = c.cfg.DefaultChannel
	}
	if channel == "" {
		return errors.New("chat channel is required")
	}

	body := map[string]any{
		"channel": channel,
		"text":    message.Text,
	}
	if len(message.Blocks) > 0 {
		blocks := make([]slackBlock, 0, len(message.Blocks))
		for _, block := range message.Blocks {
			blocks = append(blocks, slackBlock{Type: "section", Text: slackText{Type: "mrkdwn", Text: block.Markdown}})
		}
		body["blocks"] = blocks
	}

	var resp slackResponse
	if err := doJSON(ctx, c.httpClient, jsonRequest{
		operation: "post chat message",
		method:    http.MethodPost,
		url:       c.cfg.BaseURL + "/chat.postMessage",
		token:     c.cfg.Token,
		body:      body,
	}, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("post chat message failed: %s", resp.Error)
	}
	return nil
}
