// Package events defines the closed set of in-process domain events.
//
// Every event carries the full snapshot its consumers need, so handlers never
// perform secondary lookups. Events are values: the bus hands each handler its
// own deep copy, which keeps a published event immutable for every consumer.
package events

import (
	"maps"
	"slices"
	"time"
)

// EventType is the discriminant tag used as the bus topic.
type EventType string

const (
	ProposalStatusChangedType EventType = "proposal.status.changed"
	GallerySpeakerTaggedType  EventType = "gallery.speaker.tagged"
	ContractStatusChangedType EventType = "sponsor.contract.status.changed"
)

// Types lists every known event type.
func Types() []EventType {
	return []EventType{ProposalStatusChangedType, GallerySpeakerTaggedType, ContractStatusChangedType}
}

// Event is implemented only by the types in this package.
type Event interface {
	Type() EventType
	OccurredAt() time.Time
	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() Event
	sealed()
}

// Speaker is the speaker snapshot embedded in events.
type Speaker struct {
	ID    string
	Name  string
	Email string
}

// HasEmail reports whether the speaker can be contacted.
func (s Speaker) HasEmail() bool {
	return s.Email != ""
}

// Conference is the conference snapshot embedded in events.
type Conference struct {
	ID                string
	Title             string
	Domain            string
	ContactEmail      string
	CFPChannel        string
	SalesChannel      string
	SpeakerAudienceID string
}

// ProposalStatusChanged is published after a CFP proposal transitions status.
type ProposalStatusChanged struct {
	Timestamp      time.Time
	Proposal       Proposal
	PreviousStatus ProposalStatus
	NewStatus      ProposalStatus
	Action         Action
	Conference     Conference
	Speakers       []Speaker
	Metadata       Metadata
}

func (ProposalStatusChanged) Type() EventType { return ProposalStatusChangedType }

func (e ProposalStatusChanged) OccurredAt() time.Time { return e.Timestamp }

func (e ProposalStatusChanged) Clone() Event {
	e.Speakers = slices.Clone(e.Speakers)
	e.Metadata.Extra = maps.Clone(e.Metadata.Extra)
	return e
}

func (ProposalStatusChanged) sealed() {}

// PrimarySpeaker returns the first embedded speaker.
func (e ProposalStatusChanged) PrimarySpeaker() (Speaker, bool) {
	if len(e.Speakers) == 0 {
		return Speaker{}, false
	}
	return e.Speakers[0], true
}

// GallerySpeakerTagged is published when speakers are tagged in a gallery image.
type GallerySpeakerTagged struct {
	Timestamp  time.Time
	Image      GalleryImage
	Conference Conference
	Speakers   []Speaker
	TaggedBy   string
}

func (GallerySpeakerTagged) Type() EventType { return GallerySpeakerTaggedType }

func (e GallerySpeakerTagged) OccurredAt() time.Time { return e.Timestamp }

func (e GallerySpeakerTagged) Clone() Event {
	e.Speakers = slices.Clone(e.Speakers)
	return e
}

func (GallerySpeakerTagged) sealed() {}

// GalleryImage is the tagged image snapshot.
type GalleryImage struct {
	ID           string
	URL          string
	Caption      string
	Photographer string
}

// ContractStatusChanged is published after a sponsor contract signature status is committed.
type ContractStatusChanged struct {
	Timestamp        time.Time
	SponsorID        string
	SponsorName      string
	AgreementID      string
	PreviousStatus   string
	NewStatus        string
	DocumentAttached bool
	Conference       Conference
}

func (ContractStatusChanged) Type() EventType { return ContractStatusChangedType }

func (e ContractStatusChanged) OccurredAt() time.Time { return e.Timestamp }

func (e ContractStatusChanged) Clone() Event { return e }

func (ContractStatusChanged) sealed() {}
