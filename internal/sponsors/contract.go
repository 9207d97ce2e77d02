// Package sponsors owns the sponsor-for-conference contract record and its
// signature state machine.
package sponsors

import (
	"fmt"
	"time"

	"github.com/fr0stylo/confhub/internal/docstore"
	"github.com/fr0stylo/confhub/internal/events"
)

// Document types and fields of the contract record.
const (
	DocType         = "sponsorForConference"
	ActivityDocType = "sponsorActivity"

	FieldSignatureID      = "signatureId"
	FieldSignatureStatus  = "signatureStatus"
	FieldContractStatus   = "contractStatus"
	FieldContractSignedAt = "contractSignedAt"
	FieldContractDocument = "contractDocument"

	ContractStatusSigned = "contract-signed"
)

// Contract is the typed view of a sponsor-for-conference record.
type Contract struct {
	ID              string
	SignatureID     string
	SignatureStatus SignatureStatus
	ContractStatus  string
	SponsorID       string
	SponsorName     string
	Conference      events.Conference
}

// FromDocument reads the contract fields from a stored record. Missing
// fields are left empty; a missing status reads as pending.
func FromDocument(doc docstore.Document) Contract {
	contract := Contract{
		ID:              doc.ID,
		SignatureID:     doc.String(FieldSignatureID),
		SignatureStatus: ParseSignatureStatus(doc.String(FieldSignatureStatus)),
		ContractStatus:  doc.String(FieldContractStatus),
	}
	if sponsor, ok := doc.Fields["sponsor"].(map[string]any); ok {
		contract.SponsorID, _ = sponsor["_ref"].(string)
		contract.SponsorName, _ = sponsor["name"].(string)
	}
	if conference, ok := doc.Fields["conference"].(map[string]any); ok {
		contract.Conference.ID, _ = conference["_ref"].(string)
		contract.Conference.Title, _ = conference["title"].(string)
		contract.Conference.Domain, _ = conference["domain"].(string)
		contract.Conference.ContactEmail, _ = conference["contactEmail"].(string)
		contract.Conference.SalesChannel, _ = conference["salesChannel"].(string)
	}
	return contract
}

// ByAgreement is the lookup for the record tracking agreementID.
func ByAgreement(agreementID string) docstore.Query {
	return docstore.Query{
		Type:  DocType,
		Match: map[string]any{FieldSignatureID: agreementID},
	}
}

// ActivityEntry builds the audit record for a committed signature change.
func ActivityEntry(contract Contract, from, to SignatureStatus, at string) map[string]any {
	return map[string]any{
		"sponsorForConference": docstore.Reference(contract.ID),
		"activityType":         "signature_status_changed",
		"description":          fmt.Sprintf("Contract signature status changed from %s to %s", from, to),
		"signatureId":          contract.SignatureID,
		"metadata": map[string]any{
			"previousStatus": string(from),
			"newStatus":      string(to),
		},
		"createdBy": "adobe-sign-webhook",
		"createdAt": at,
	}
}

// Clock returns the current time as an ISO-8601 string.
type Clock func() string

// SystemClock formats the wall clock in UTC with millisecond precision.
func SystemClock() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
