package adobesign

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/fr0stylo/confhub/internal/sponsors"
)

// Provider event names handled by this webhook.
const (
	EventWorkflowCompleted = "AGREEMENT_WORKFLOW_COMPLETED"
	EventRecalled          = "AGREEMENT_RECALLED"
	EventExpired           = "AGREEMENT_EXPIRED"

	// SignedDocumentField is the trimmed-parameter name for the embedded document.
	SignedDocumentField = "agreement.signedDocumentInfo"
)

// Notification is the delivery body. Unknown fields are ignored.
type Notification struct {
	Event                        string     `json:"event"`
	Agreement                    *Agreement `json:"agreement,omitempty"`
	ConditionalParametersTrimmed []string   `json:"conditionalParametersTrimmed,omitempty"`
}

// Agreement is the subset of the provider agreement this system reads.
type Agreement struct {
	ID                 string              `json:"id"`
	SignedDocumentInfo *SignedDocumentInfo `json:"signedDocumentInfo,omitempty"`
}

// SignedDocumentInfo carries the base64 signed document when not trimmed.
type SignedDocumentInfo struct {
	Document string `json:"document"`
	MimeType string `json:"mimeType"`
	Name     string `json:"name"`
}

// DecodeNotification parses a delivery body. A body that is not a JSON object
// or lacks event is invalid.
func DecodeNotification(body []byte) (Notification, error) {
	var notification Notification
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&notification); err != nil {
		return Notification{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	notification.Event = strings.TrimSpace(notification.Event)
	if notification.Event == "" {
		return Notification{}, fmt.Errorf("%w: event is required", ErrInvalidPayload)
	}
	if notification.Agreement != nil {
		notification.Agreement.ID = strings.TrimSpace(notification.Agreement.ID)
	}
	return notification, nil
}

// Outcome maps the provider event to a contract outcome.
func (n Notification) Outcome() (sponsors.Outcome, bool) {
	switch n.Event {
	case EventWorkflowCompleted:
		return sponsors.OutcomeCompleted, true
	case EventRecalled:
		return sponsors.OutcomeRecalled, true
	case EventExpired:
		return sponsors.OutcomeExpired, true
	default:
		return "", false
	}
}

// AgreementID returns the agreement id or "".
func (n Notification) AgreementID() string {
	if n.Agreement == nil {
		return ""
	}
	return n.Agreement.ID
}

// DocumentTrimmed reports whether the provider dropped the signed document.
func (n Notification) DocumentTrimmed() bool {
	return slices.Contains(n.ConditionalParametersTrimmed, SignedDocumentField)
}

// SignedDocument returns the embedded document, if any.
func (n Notification) SignedDocument() (SignedDocumentInfo, bool) {
	if n.Agreement == nil || n.Agreement.SignedDocumentInfo == nil {
		return SignedDocumentInfo{}, false
	}
	info := *n.Agreement.SignedDocumentInfo
	if strings.TrimSpace(info.Document) == "" {
		return SignedDocumentInfo{}, false
	}
	return info, true
}

// Bytes decodes the base64 document.
func (d SignedDocumentInfo) Bytes() ([]byte, error) {
	raw := strings.Join(strings.Fields(d.Document), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: signed document is not valid base64: %v", ErrInvalidPayload, err)
	}
	return data, nil
}
