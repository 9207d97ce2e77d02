package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	ceevent "github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"

	"github.com/fr0stylo/confhub/internal/events"
)

const (
	relaySource     = "confhub"
	relayTypePrefix = "io.confhub."
)

// RelayHandler forwards domain events to an external sink as structured
// CloudEvents over HTTP.
type RelayHandler struct {
	client cloudevents.Client
	target string
	log    *slog.Logger
}

// NewRelayHandler forwards events as CloudEvents over HTTP to target.
func NewRelayHandler(target string, log *slog.Logger) (*RelayHandler, error) {
	protocol, err := cloudevents.NewHTTP(cloudevents.WithTarget(target))
	if err != nil {
		return nil, fmt.Errorf("create cloudevents transport: %w", err)
	}
	client, err := cloudevents.NewClient(protocol)
	if err != nil {
		return nil, fmt.Errorf("create cloudevents client: %w", err)
	}
	return &RelayHandler{client: client, target: target, log: log}, nil
}

// Name identifies the handler in logs and metrics.
func (h *RelayHandler) Name() string { return "cloudevents-relay" }

// Handle sends the event to the relay target as a structured CloudEvent.
func (h *RelayHandler) Handle(ctx context.Context, event events.Event) error {
	ce, err := toCloudEvent(event)
	if err != nil {
		return err
	}
	result := h.client.Send(cloudevents.WithEncodingStructured(ctx), ce)
	if !cloudevents.IsACK(result) {
		return fmt.Errorf("relay %s to %s: %w", event.Type(), h.target, result)
	}
	h.log.DebugContext(ctx, "Domain event relayed", "event_type", string(event.Type()), "cloudevent_id", ce.ID())
	return nil
}

func toCloudEvent(event events.Event) (ceevent.Event, error) {
	ce := cloudevents.NewEvent()
	ce.SetID(uuid.NewString())
	ce.SetSource(relaySource)
	ce.SetType(relayTypePrefix + string(event.Type()))
	ce.SetTime(event.OccurredAt())

	var subject string
	var data any
	switch e := event.(type) {
	case events.ProposalStatusChanged:
		subject = "proposal/" + e.Proposal.ID
		data = proposalPayload(e)
	case events.GallerySpeakerTagged:
		subject = "gallery/" + e.Image.ID
		data = galleryPayload(e)
	case events.ContractStatusChanged:
		subject = "agreement/" + e.AgreementID
		data = contractPayload(e)
	default:
		return ceevent.Event{}, fmt.Errorf("unsupported event type %s", event.Type())
	}
	ce.SetSubject(subject)
	if err := ce.SetData(cloudevents.ApplicationJSON, data); err != nil {
		return ceevent.Event{}, fmt.Errorf("encode %s payload: %w", event.Type(), err)
	}
	return ce, nil
}

type relayConference struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type relaySpeaker struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func relaySpeakers(speakers []events.Speaker) []relaySpeaker {
	out := make([]relaySpeaker, 0, len(speakers))
	for _, s := range speakers {
		out = append(out, relaySpeaker{ID: s.ID, Name: s.Name})
	}
	return out
}

func proposalPayload(e events.ProposalStatusChanged) map[string]any {
	return map[string]any{
		"proposalId":     e.Proposal.ID,
		"title":          e.Proposal.Title,
		"previousStatus": e.PreviousStatus,
		"newStatus":      e.NewStatus,
		"action":         e.Action,
		"triggeredBy":    e.Metadata.TriggeredBy,
		"conference":     relayConference{ID: e.Conference.ID, Title: e.Conference.Title},
		"speakers":       relaySpeakers(e.Speakers),
	}
}

func galleryPayload(e events.GallerySpeakerTagged) map[string]any {
	return map[string]any{
		"imageId":    e.Image.ID,
		"imageUrl":   e.Image.URL,
		"taggedBy":   e.TaggedBy,
		"conference": relayConference{ID: e.Conference.ID, Title: e.Conference.Title},
		"speakers":   relaySpeakers(e.Speakers),
	}
}

func contractPayload(e events.ContractStatusChanged) map[string]any {
	return map[string]any{
		"agreementId":      e.AgreementID,
		"sponsorId":        e.SponsorID,
		"sponsorName":      e.SponsorName,
		"previousStatus":   e.PreviousStatus,
		"newStatus":        e.NewStatus,
		"documentAttached": e.DocumentAttached,
		"conference":       relayConference{ID: e.Conference.ID, Title: e.Conference.Title},
	}
}
