// Package eventhandlers holds the domain event consumers and the registry that
// wires them to a bus. Handlers are written without their own panic or error
// containment; the bus isolates them.
package eventhandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fr0stylo/confhub/internal/eventbus"
	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/ports"
)

const defaultGalleryBatchSize = 5

// Subscriber is the registration side of the bus.
type Subscriber interface {
	Subscribe(eventType events.EventType, handler eventbus.Handler) error
}

// Dependencies are the collaborators handed to every handler.
type Dependencies struct {
	Log      *slog.Logger
	Email    ports.EmailSender
	Chat     ports.ChatNotifier
	Audience ports.AudienceClient

	// DefaultAudienceID is used when the conference has no speaker audience.
	DefaultAudienceID string
	// GalleryBatchSize caps concurrent gallery notification sends.
	GalleryBatchSize int
	// PublicURL prefixes links in notification bodies.
	PublicURL string
	// RelayURL enables CloudEvents forwarding of every domain event when set.
	RelayURL string
}

// Initialize subscribes every handler to its event types. It is called once
// per bus by the composition root or a test harness.
func Initialize(bus Subscriber, deps Dependencies) error {
	if bus == nil {
		return errors.New("eventhandlers: bus is required")
	}
	if deps.Email == nil || deps.Chat == nil || deps.Audience == nil {
		return errors.New("eventhandlers: email, chat and audience transports are required")
	}
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	if deps.GalleryBatchSize <= 0 {
		deps.GalleryBatchSize = defaultGalleryBatchSize
	}

	templates, err := loadTemplates()
	if err != nil {
		return err
	}

	chat := NewChatHandler(deps.Chat, deps.Log)
	subscriptions := []struct {
		eventType events.EventType
		handler   eventbus.Handler
	}{
		{events.ProposalStatusChangedType, NewProposalEmailHandler(deps.Email, templates, deps.PublicURL, deps.Log)},
		{events.ProposalStatusChangedType, chat},
		{events.ProposalStatusChangedType, NewAudienceSyncHandler(deps.Audience, deps.DefaultAudienceID, deps.Log)},
		{events.GallerySpeakerTaggedType, NewGalleryNotifier(deps.Email, templates, deps.GalleryBatchSize, deps.PublicURL, deps.Log)},
		{events.ContractStatusChangedType, chat},
	}

	if relayURL := strings.TrimSpace(deps.RelayURL); relayURL != "" {
		relay, err := NewRelayHandler(relayURL, deps.Log)
		if err != nil {
			return err
		}
		for _, eventType := range events.Types() {
			subscriptions = append(subscriptions, struct {
				eventType events.EventType
				handler   eventbus.Handler
			}{eventType, relay})
		}
	}

	for _, sub := range subscriptions {
		if err := bus.Subscribe(sub.eventType, sub.handler); err != nil {
			return fmt.Errorf("subscribe %s to %s: %w", sub.handler.Name(), sub.eventType, err)
		}
	}
	return nil
}
