// Package notify holds the outbound HTTP transports used by event handlers:
// transactional email and audience lists on Resend, and Slack chat messages.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 4 << 10
)

// RetryPolicy bounds retries of throttled or failed upstream calls.
type RetryPolicy struct {
	Attempts uint64
	Base     time.Duration
}

// DefaultRetryPolicy retries three times starting at 250ms.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Base: 250 * time.Millisecond}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.Base
	if base <= 0 {
		base = DefaultRetryPolicy.Base
	}
	b := retry.NewExponential(base)
	b = retry.WithJitterPercent(20, b)
	return retry.WithMaxRetries(p.Attempts, b)
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

type jsonRequest struct {
	operation string
	method    string
	url       string
	token     string
	body      any
}

// doJSON sends req and decodes a JSON response into out when non-nil.
func doJSON(ctx context.Context, client *http.Client, req jsonRequest, out any) error {
	var payload []byte
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.operation, err)
		}
		payload = raw
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &StatusError{
			Operation:  req.operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.operation, err)
	}
	return nil
}

// doWithRetry retries transport errors, 429 and 5xx responses.
func doWithRetry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !retryable(statusErr.StatusCode) {
			return err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return retry.RetryableError(err)
	})
}
