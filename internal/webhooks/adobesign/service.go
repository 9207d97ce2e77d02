// Package adobesign handles Adobe Sign webhook verification and agreement
// notifications, driving the sponsor contract signature lifecycle.
package adobesign

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fr0stylo/confhub/internal/docstore"
	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/observability"
	"github.com/fr0stylo/confhub/internal/sponsors"
)

const assetKind = "file"

// Publisher receives contract status changes once they are committed.
type Publisher interface {
	PublishAsync(ctx context.Context, event events.Event)
}

// Result describes what a delivery did. Every result maps to 200.
type Result string

const (
	ResultIgnored   Result = "ignored"
	ResultNotFound  Result = "not_found"
	ResultUnchanged Result = "unchanged"
	ResultConflict  Result = "conflict"
	ResultCommitted Result = "committed"
)

// Service applies agreement notifications to sponsor contract records.
type Service struct {
	clientID  string
	store     docstore.Store
	publisher Publisher
	now       sponsors.Clock
	log       *slog.Logger
	metrics   webhookMetrics
}

// Option customizes a Service.
type Option func(*Service)

// WithPublisher publishes ContractStatusChanged after each committed transition.
func WithPublisher(publisher Publisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// WithClock overrides the ISO-8601 time source.
func WithClock(now sponsors.Clock) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService constructs the webhook service for the configured client id.
func NewService(clientID string, store docstore.Store, opts ...Option) *Service {
	s := &Service{
		clientID: strings.TrimSpace(clientID),
		store:    store,
		now:      sponsors.SystemClock,
		log:      slog.Default(),
		metrics:  newWebhookMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate checks the client id header value in constant time.
func (s *Service) Authenticate(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrMissingClientID
	}
	if s.clientID == "" || subtle.ConstantTimeCompare([]byte(clientID), []byte(s.clientID)) != 1 {
		return ErrInvalidClientID
	}
	return nil
}

// Deliver processes one notification body. Unknown events, agreement-less
// notifications and untracked agreements are successful no-ops.
func (s *Service) Deliver(ctx context.Context, body []byte) (Result, error) {
	notification, err := DecodeNotification(body)
	if err != nil {
		s.metrics.recordRejected(ctx, string(ErrorValidation))
		return "", err
	}
	s.metrics.recordRequest(ctx, notification.Event)

	result, err := s.deliver(ctx, notification)
	if err != nil {
		s.metrics.recordRejected(ctx, string(ClassifyError(err)))
		return "", err
	}
	s.metrics.recordResult(ctx, notification.Event, string(result))
	return result, nil
}

func (s *Service) deliver(ctx context.Context, notification Notification) (Result, error) {
	outcome, ok := notification.Outcome()
	agreementID := notification.AgreementID()
	if !ok || agreementID == "" {
		s.log.DebugContext(ctx, "Ignoring agreement notification", "event", notification.Event)
		return ResultIgnored, nil
	}
	ctx = observability.WithAgreementID(ctx, agreementID)

	doc, err := s.store.FetchOne(ctx, sponsors.ByAgreement(agreementID))
	if errors.Is(err, docstore.ErrNotFound) {
		s.log.InfoContext(ctx, "No contract tracks agreement", "agreement_id", agreementID, "event", notification.Event)
		return ResultNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: fetch contract for agreement %s: %v", ErrUpstream, agreementID, err)
	}

	contract := sponsors.FromDocument(doc)
	transition := sponsors.Apply(contract.SignatureStatus, outcome, s.now())
	switch {
	case transition.Conflict:
		s.log.WarnContext(ctx, "Ignoring transition from terminal signature status",
			"agreement_id", agreementID,
			"event", notification.Event,
			"signature_status", string(contract.SignatureStatus),
		)
		return ResultConflict, nil
	case !transition.Changed:
		s.log.InfoContext(ctx, "Contract already in target signature status",
			"agreement_id", agreementID,
			"signature_status", string(contract.SignatureStatus),
		)
		return ResultUnchanged, nil
	}

	patch := transition.Patch
	documentAttached := false
	if outcome == sponsors.OutcomeCompleted {
		reference, err := s.signedDocumentReference(ctx, agreementID, notification)
		if err != nil {
			return "", err
		}
		if reference != nil {
			patch.Set[sponsors.FieldContractDocument] = reference
			documentAttached = true
		}
	}

	if err := s.store.Patch(ctx, contract.ID, patch); err != nil {
		return "", fmt.Errorf("%w: commit contract %s: %v", ErrUpstream, contract.ID, err)
	}
	s.log.InfoContext(ctx, "Contract signature status updated",
		"agreement_id", agreementID,
		"from", string(transition.From),
		"to", string(transition.To),
		"document_attached", documentAttached,
	)

	if outcome == sponsors.OutcomeCompleted {
		s.recordActivity(ctx, contract, transition)
	}
	s.publish(ctx, contract, transition, documentAttached)
	return ResultCommitted, nil
}

// signedDocumentReference uploads the embedded document and returns the
// contractDocument value, or nil when the payload carries none.
func (s *Service) signedDocumentReference(ctx context.Context, agreementID string, notification Notification) (map[string]any, error) {
	if notification.DocumentTrimmed() {
		s.log.WarnContext(ctx, "Signed document trimmed from notification; committing status only",
			"agreement_id", agreementID,
		)
		return nil, nil
	}
	info, ok := notification.SignedDocument()
	if !ok {
		return nil, nil
	}
	data, err := info.Bytes()
	if err != nil {
		return nil, err
	}

	filename := strings.TrimSpace(info.Name)
	if filename == "" {
		filename = agreementID + ".pdf"
	}
	contentType := strings.TrimSpace(info.MimeType)
	if contentType == "" {
		contentType = "application/pdf"
	}

	asset, err := s.store.UploadAsset(ctx, assetKind, data, docstore.UploadOptions{
		Filename:    filename,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload signed document for agreement %s: %v", ErrUpstream, agreementID, err)
	}
	return docstore.FileField(asset.ID), nil
}

// recordActivity writes the audit entry for a completed signature. Recalls and
// expiries leave only the status change. Failures are logged, never returned:
// the status change is already committed.
func (s *Service) recordActivity(ctx context.Context, contract sponsors.Contract, transition sponsors.Transition) {
	entry := sponsors.ActivityEntry(contract, transition.From, transition.To, s.now())
	if _, err := s.store.Create(ctx, sponsors.ActivityDocType, entry); err != nil {
		s.metrics.recordActivityFailure(ctx)
		s.log.ErrorContext(ctx, "Failed to record sponsor activity",
			"agreement_id", contract.SignatureID,
			"contract_id", contract.ID,
			"error", err,
		)
	}
}

func (s *Service) publish(ctx context.Context, contract sponsors.Contract, transition sponsors.Transition, documentAttached bool) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishAsync(ctx, events.ContractStatusChanged{
		Timestamp:        time.Now().UTC(),
		SponsorID:        contract.SponsorID,
		SponsorName:      contract.SponsorName,
		AgreementID:      contract.SignatureID,
		PreviousStatus:   string(transition.From),
		NewStatus:        string(transition.To),
		DocumentAttached: documentAttached,
		Conference:       contract.Conference,
	})
}
