package eventhandlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/ports"
)

// AudienceSyncHandler keeps the conference speaker mailing list in step with
// confirmed speakers. Every speaker syncs independently.
type AudienceSyncHandler struct {
	client            ports.AudienceClient
	defaultAudienceID string
	log               *slog.Logger
}

// NewAudienceSyncHandler syncs speakers into defaultAudienceID unless an event names another audience.
func NewAudienceSyncHandler(client ports.AudienceClient, defaultAudienceID string, log *slog.Logger) *AudienceSyncHandler {
	return &AudienceSyncHandler{
		client:            client,
		defaultAudienceID: strings.TrimSpace(defaultAudienceID),
		log:               log,
	}
}

// Name identifies the handler in logs and metrics.
func (h *AudienceSyncHandler) Name() string { return "audience-sync" }

type speakerSync struct {
	speaker events.Speaker
	op      string
	err     error
}

// Handle adds or removes the event's speakers from the mailing audience.
func (h *AudienceSyncHandler) Handle(ctx context.Context, event events.Event) error {
	changed, ok := event.(events.ProposalStatusChanged)
	if !ok {
		return nil
	}
	var add bool
	switch changed.Action {
	case events.ActionConfirm:
		add = true
	case events.ActionWithdraw:
		add = false
	default:
		return nil
	}

	audienceID := strings.TrimSpace(changed.Conference.SpeakerAudienceID)
	if audienceID == "" {
		audienceID = h.defaultAudienceID
	}
	if audienceID == "" {
		return errors.New("no speaker audience configured for conference " + changed.Conference.ID)
	}

	p := pool.NewWithResults[speakerSync]()
	for _, speaker := range changed.Speakers {
		if !speaker.HasEmail() {
			h.log.WarnContext(ctx, "Skipping audience sync for speaker without email",
				"proposal_id", changed.Proposal.ID,
				"speaker_id", speaker.ID,
			)
			continue
		}
		p.Go(func() speakerSync {
			if add {
				first, last := splitName(speaker.Name)
				err := h.client.AddContact(ctx, audienceID, ports.Contact{Email: speaker.Email, FirstName: first, LastName: last})
				return speakerSync{speaker: speaker, op: "add", err: err}
			}
			err := h.client.RemoveContact(ctx, audienceID, speaker.Email)
			return speakerSync{speaker: speaker, op: "remove", err: err}
		})
	}

	for _, result := range p.Wait() {
		if result.err != nil {
			h.log.ErrorContext(ctx, "Speaker audience sync failed",
				"proposal_id", changed.Proposal.ID,
				"speaker_id", result.speaker.ID,
				"operation", result.op,
				"error", result.err,
			)
			continue
		}
		h.log.InfoContext(ctx, "Speaker audience synced",
			"proposal_id", changed.Proposal.ID,
			"speaker_id", result.speaker.ID,
			"operation", result.op,
		)
	}
	return nil
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
