package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fr0stylo/confhub/internal/ports"
	"github.com/fr0stylo/confhub/internal/ratelimit"
)

var fastRetry = RetryPolicy{Attempts: 2, Base: time.Millisecond}

func TestEmailClientRetriesThrottledSend(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var mu sync.Mutex
	var received resendEmail
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails" || r.Header.Get("Authorization") != "Bearer re_test" {
			t.Errorf("unexpected request: %s auth=%q", r.URL.Path, r.Header.Get("Authorization"))
		}
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewEmailClient(EmailConfig{
		APIKey:  "re_test",
		BaseURL: server.URL,
		From:    "CFP <cfp@example.com>",
		Retry:   fastRetry,
	}, ratelimit.NewLocal(100, 10), nil)

	err := client.Send(context.Background(), ports.Email{To: "ada@example.com", Subject: "Accepted", HTML: "<p>hi</p>"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("unexpected call count: got=%d want=2", calls.Load())
	}
	mu.Lock()
	defer mu.Unlock()
	if received.From != "CFP <cfp@example.com>" || len(received.To) != 1 || received.To[0] != "ada@example.com" {
		t.Fatalf("unexpected email body: %+v", received)
	}
}

func TestEmailClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, `{"message":"invalid from"}`, http.StatusUnprocessableEntity)
	}))
	t.Cleanup(server.Close)

	client := NewEmailClient(EmailConfig{APIKey: "re_test", BaseURL: server.URL, Retry: fastRetry}, nil, nil)
	err := client.Send(context.Background(), ports.Email{To: "ada@example.com"})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 status error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("unexpected call count: got=%d want=1", calls.Load())
	}
}

func TestEmailClientWithoutKeyDropsMessage(t *testing.T) {
	t.Parallel()

	client := NewEmailClient(EmailConfig{}, nil, nil)
	if client.Enabled() {
		t.Fatal("expected client without key to be disabled")
	}
	if err := client.Send(context.Background(), ports.Email{To: "ada@example.com"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := client.Send(context.Background(), ports.Email{}); err == nil {
		t.Fatal("expected missing recipient to fail")
	}
}

func TestAudienceClientAddAndRemove(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.EscapedPath())
		mu.Unlock()
		if r.Method == http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":"contact-1"}`))
	}))
	t.Cleanup(server.Close)

	client := NewAudienceClient(EmailConfig{APIKey: "re_test", BaseURL: server.URL, Retry: fastRetry})
	ctx := context.Background()

	if err := client.AddContact(ctx, "aud-1", ports.Contact{Email: "ada@example.com", FirstName: "Ada"}); err != nil {
		t.Fatalf("add contact: %v", err)
	}
	if err := client.RemoveContact(ctx, "aud-1", "ada@example.com"); err != nil {
		t.Fatalf("remove missing contact should succeed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"POST /audiences/aud-1/contacts", "DELETE /audiences/aud-1/contacts/ada@example.com"}
	if len(paths) != len(want) {
		t.Fatalf("unexpected requests: got=%v want=%v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("unexpected request %d: got=%q want=%q", i, paths[i], want[i])
		}
	}

	disabled := NewAudienceClient(EmailConfig{})
	if err := disabled.AddContact(ctx, "aud-1", ports.Contact{Email: "x@example.com"}); !errors.Is(err, ErrAudienceDisabled) {
		t.Fatalf("expected ErrAudienceDisabled, got %v", err)
	}
}

func TestSlackClientPostsBlocks(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		mu.Lock()
		defer mu.Unlock()
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := NewSlackClient(SlackConfig{Token: "xoxb-test", BaseURL: server.URL, DefaultChannel: "C-DEFAULT"})
	err := client.PostMessage(context.Background(), "", ports.ChatMessage{
		Text:   "Talk confirmed",
		Blocks: []ports.ChatBlock{{Markdown: "*Operators at scale* confirmed"}},
	})
	if err != nil {
		t.Fatalf("post message: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if received["channel"] != "C-DEFAULT" || received["text"] != "Talk confirmed" {
		t.Fatalf("unexpected message: %v", received)
	}
	blocks, _ := received["blocks"].([]any)
	if len(blocks) != 1 {
		t.Fatalf("unexpected blocks: %v", received["blocks"])
	}
}

func TestSlackClientSurfacesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	t.Cleanup(server.Close)

	client := NewSlackClient(SlackConfig{Token: "xoxb-test", BaseURL: server.URL})
	err := client.PostMessage(context.Background(), "C-MISSING", ports.ChatMessage{Text: "hello"})
	if err == nil || err.Error() != "post chat message failed: channel_not_found" {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewSlackClient(SlackConfig{}).PostMessage(context.Background(), "C1", ports.ChatMessage{}); !errors.Is(err, ErrChatDisabled) {
		t.Fatalf("expected ErrChatDisabled, got %v", err)
	}
}
