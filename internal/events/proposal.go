package events

// ProposalStatus is a CFP proposal status.
type ProposalStatus string

const (
	ProposalDraft     ProposalStatus = "draft"
	ProposalSubmitted ProposalStatus = "submitted"
	ProposalAccepted  ProposalStatus = "accepted"
	ProposalRejected  ProposalStatus = "rejected"
	ProposalConfirmed ProposalStatus = "confirmed"
	ProposalWithdrawn ProposalStatus = "withdrawn"
	ProposalDeleted   ProposalStatus = "deleted"
)

// Action is the organizer or speaker action that caused a status change.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionUnsubmit Action = "unsubmit"
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionRemind   Action = "remind"
	ActionConfirm  Action = "confirm"
	ActionWithdraw Action = "withdraw"
	ActionDelete   Action = "delete"
)

// Proposal is the proposal snapshot embedded in events.
type Proposal struct {
	ID       string
	Title    string
	Format   string
	Language string
	Level    string
	Status   ProposalStatus
}

// Metadata carries free-form context about who triggered the change and whether to notify.
type Metadata struct {
	ShouldNotify bool
	TriggeredBy  string
	Comment      string
	Extra        map[string]string
}
