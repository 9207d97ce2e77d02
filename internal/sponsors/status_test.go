package sponsors

import (
	"maps"
	"testing"

	"github.com/fr0stylo/confhub/internal/docstore"
)

func TestApplyFromPending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		outcome Outcome
		want    map[string]any
	}{
		{
			name:    "completed",
			outcome: OutcomeCompleted,
			want: map[string]any{
				FieldSignatureStatus:  "signed",
				FieldContractStatus:   "contract-signed",
				FieldContractSignedAt: "2026-03-01T10:00:00.000Z",
			},
		},
		{
			name:    "recalled",
			outcome: OutcomeRecalled,
			want:    map[string]any{FieldSignatureStatus: "rejected"},
		},
		{
			name:    "expired",
			outcome: OutcomeExpired,
			want:    map[string]any{FieldSignatureStatus: "expired"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			transition := Apply(StatusPending, tc.outcome, "2026-03-01T10:00:00.000Z")
			if !transition.Changed || transition.Conflict {
				t.Fatalf("unexpected transition flags: %+v", transition)
			}
			if !maps.Equal(transition.Patch.Set, tc.want) {
				t.Fatalf("unexpected patch: got=%v want=%v", transition.Patch.Set, tc.want)
			}
			if len(transition.Patch.Unset) != 0 {
				t.Fatalf("unexpected unset fields: %v", transition.Patch.Unset)
			}
		})
	}
}

func TestApplyIsIdempotentAndNeverRegresses(t *testing.T) {
	t.Parallel()

	same := Apply(StatusSigned, OutcomeCompleted, "2026-03-02T10:00:00.000Z")
	if same.Changed || same.Conflict || !same.Patch.Empty() {
		t.Fatalf("re-applying completed should be a no-op: %+v", same)
	}

	regress := Apply(StatusSigned, OutcomeRecalled, "")
	if regress.Changed || !regress.Conflict || regress.To != StatusSigned {
		t.Fatalf("terminal status should not regress: %+v", regress)
	}

	unknown := Apply(StatusPending, Outcome("viewed"), "")
	if unknown.Changed || unknown.Conflict {
		t.Fatalf("unknown outcome should not change state: %+v", unknown)
	}
}

func TestParseSignatureStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]SignatureStatus{
		"":         StatusPending,
		"pending":  StatusPending,
		"signed":   StatusSigned,
		"rejected": StatusRejected,
		"expired":  StatusExpired,
		"SIGNED":   StatusPending,
	}
	for raw, want := range cases {
		if got := ParseSignatureStatus(raw); got != want {
			t.Fatalf("unexpected status for %q: got=%q want=%q", raw, got, want)
		}
	}
}

func TestFromDocument(t *testing.T) {
	t.Parallel()

	contract := FromDocument(docstore.Document{
		ID: "sfc-1",
		Fields: map[string]any{
			"signatureId":     "agr-1",
			"signatureStatus": "signed",
			"sponsor":         map[string]any{"_ref": "sp-1", "name": "Acme"},
			"conference":      map[string]any{"_ref": "conf-1", "title": "KubeDays", "salesChannel": "C-SALES"},
		},
	})

	if contract.SignatureStatus != StatusSigned || contract.SignatureID != "agr-1" {
		t.Fatalf("unexpected contract status fields: %+v", contract)
	}
	if contract.SponsorName != "Acme" || contract.SponsorID != "sp-1" {
		t.Fatalf("unexpected sponsor: %+v", contract)
	}
	if contract.Conference.SalesChannel != "C-SALES" || contract.Conference.Title != "KubeDays" {
		t.Fatalf("unexpected conference: %+v", contract.Conference)
	}
}

func TestActivityEntryReferencesContract(t *testing.T) {
	t.Parallel()

	entry := ActivityEntry(Contract{ID: "sfc-1", SignatureID: "agr-1"}, StatusPending, StatusSigned, "2026-03-01T10:00:00.000Z")
	ref, _ := entry["sponsorForConference"].(map[string]any)
	if ref["_ref"] != "sfc-1" {
		t.Fatalf("unexpected reference: %v", entry["sponsorForConference"])
	}
	if entry["description"] != "Contract signature status changed from pending to signed" {
		t.Fatalf("unexpected description: %v", entry["description"])
	}
}
