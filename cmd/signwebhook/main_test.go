package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fr0stylo/confhub/internal/webhooks/adobesign"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "signwebhook.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigResolvesDocumentRelativeToConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "base_url: http://localhost:8080/\nclient_id: abc\nagreement_id: agr-1\ndocument: signed.pdf\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected base url: got=%q want=%q", cfg.BaseURL, "http://localhost:8080")
	}
	if cfg.Event != adobesign.EventWorkflowCompleted {
		t.Fatalf("unexpected default event: got=%q want=%q", cfg.Event, adobesign.EventWorkflowCompleted)
	}
	if cfg.Document != filepath.Join(dir, "signed.pdf") {
		t.Fatalf("unexpected document path: got=%q", cfg.Document)
	}
}

func TestLoadConfigRequiresFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "base_url: http://localhost:8080\n")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected missing client_id and agreement_id to be rejected")
	}
}

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	document := filepath.Join(dir, "signed.pdf")
	if err := os.WriteFile(document, []byte("%PDF-1.7"), 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}

	body, err := buildPayload(config{Event: adobesign.EventWorkflowCompleted, AgreementID: "agr-1", Document: document})
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}
	decoded, err := adobesign.DecodeNotification(body)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	info, ok := decoded.SignedDocument()
	if !ok {
		t.Fatal("expected embedded signed document")
	}
	raw, err := info.Bytes()
	if err != nil || string(raw) != "%PDF-1.7" {
		t.Fatalf("unexpected document bytes: got=%q err=%v", raw, err)
	}

	trimmed, err := buildPayload(config{Event: adobesign.EventWorkflowCompleted, AgreementID: "agr-1", Trimmed: true})
	if err != nil {
		t.Fatalf("build trimmed payload: %v", err)
	}
	decoded, err = adobesign.DecodeNotification(trimmed)
	if err != nil {
		t.Fatalf("decode trimmed payload: %v", err)
	}
	if !decoded.DocumentTrimmed() {
		t.Fatal("expected trimmed document marker")
	}
}

func TestSendDeliveryPostsWithClientID(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var gotClientID string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		gotClientID = r.Header.Get(adobesign.ClientIDHeader)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config{BaseURL: server.URL, ClientID: "abc", AgreementID: "agr-9", Event: adobesign.EventRecalled}
	if err := sendDelivery(context.Background(), server.Client(), cfg); err != nil {
		t.Fatalf("send delivery: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotClientID != "abc" {
		t.Fatalf("unexpected client id header: got=%q want=%q", gotClientID, "abc")
	}
	if gotBody["event"] != adobesign.EventRecalled {
		t.Fatalf("unexpected event: got=%v want=%v", gotBody["event"], adobesign.EventRecalled)
	}
	if _, ok := gotBody["agreement"].(map[string]any)["signedDocumentInfo"]; ok {
		t.Fatal("recall deliveries should not embed a document")
	}
}
