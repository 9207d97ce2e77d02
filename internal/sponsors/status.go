package sponsors

import "github.com/fr0stylo/confhub/internal/docstore"

// SignatureStatus tracks the signing outcome of an agreement.
type SignatureStatus string

const (
	StatusPending  SignatureStatus = "pending"
	StatusSigned   SignatureStatus = "signed"
	StatusRejected SignatureStatus = "rejected"
	StatusExpired  SignatureStatus = "expired"
)

// ParseSignatureStatus maps stored values; anything unknown is pending.
func ParseSignatureStatus(value string) SignatureStatus {
	switch status := SignatureStatus(value); status {
	case StatusSigned, StatusRejected, StatusExpired:
		return status
	default:
		return StatusPending
	}
}

// Terminal reports whether no further transition leaves this status.
func (s SignatureStatus) Terminal() bool {
	return s != StatusPending
}

// Outcome is the provider-reported end of a signing workflow.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeRecalled  Outcome = "recalled"
	OutcomeExpired   Outcome = "expired"
)

// Target is the status an outcome moves a pending contract to.
func (o Outcome) Target() (SignatureStatus, bool) {
	switch o {
	case OutcomeCompleted:
		return StatusSigned, true
	case OutcomeRecalled:
		return StatusRejected, true
	case OutcomeExpired:
		return StatusExpired, true
	default:
		return "", false
	}
}

// Transition is the result of applying an outcome to a stored status.
type Transition struct {
	From    SignatureStatus
	To      SignatureStatus
	Patch   docstore.Patch
	Changed bool
	// Conflict is set when the record already holds a different terminal status.
	Conflict bool
}

// Apply computes the patch moving current to the outcome's target. It is pure:
// re-applying the transition that produced current yields Changed=false, and
// terminal statuses never regress. signedAt is only used for completed outcomes.
func Apply(current SignatureStatus, outcome Outcome, signedAt string) Transition {
	target, ok := outcome.Target()
	if !ok {
		return Transition{From: current, To: current}
	}
	if current == target {
		return Transition{From: current, To: current}
	}
	if current.Terminal() {
		return Transition{From: current, To: current, Conflict: true}
	}

	fields := map[string]any{FieldSignatureStatus: string(target)}
	if outcome == OutcomeCompleted {
		fields[FieldContractStatus] = ContractStatusSigned
		fields[FieldContractSignedAt] = signedAt
	}
	return Transition{
		From:    current,
		To:      target,
		Patch:   docstore.Patch{Set: fields},
		Changed: true,
	}
}
