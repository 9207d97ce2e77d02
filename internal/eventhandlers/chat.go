package eventhandlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/ports"
)

// ChatHandler posts one summary message per confirmed or withdrawn proposal
// and per committed sponsor contract status change.
type ChatHandler struct {
	notifier ports.ChatNotifier
	log      *slog.Logger
}

// NewChatHandler posts proposal and contract updates through notifier.
func NewChatHandler(notifier ports.ChatNotifier, log *slog.Logger) *ChatHandler {
	return &ChatHandler{notifier: notifier, log: log}
}

// Name identifies the handler in logs and metrics.
func (h *ChatHandler) Name() string { return "chat-notification" }

// Handle posts a chat message for proposal and contract status changes.
func (h *ChatHandler) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ProposalStatusChanged:
		return h.proposal(ctx, e)
	case events.ContractStatusChanged:
		return h.contract(ctx, e)
	case events.GallerySpeakerTagged:
	}
	return nil
}

func (h *ChatHandler) proposal(ctx context.Context, e events.ProposalStatusChanged) error {
	var verb string
	switch e.Action {
	case events.ActionConfirm:
		verb = "confirmed"
	case events.ActionWithdraw:
		verb = "withdrawn"
	default:
		return nil
	}

	speakers := strings.Join(lo.Map(e.Speakers, func(s events.Speaker, _ int) string { return s.Name }), ", ")
	if speakers == "" {
		speakers = "unknown speaker"
	}
	text := fmt.Sprintf("Proposal %q by %s was %s for %s", e.Proposal.Title, speakers, verb, e.Conference.Title)
	details := fmt.Sprintf("*%s* (%s) was *%s*\nSpeakers: %s", e.Proposal.Title, lo.CoalesceOrEmpty(e.Proposal.Format, "talk"), verb, speakers)
	if e.Metadata.Comment != "" {
		details += "\n> " + e.Metadata.Comment
	}
	return h.notifier.PostMessage(ctx, e.Conference.CFPChannel, ports.ChatMessage{
		Text:   text,
		Blocks: []ports.ChatBlock{{Markdown: details}},
	})
}

func (h *ChatHandler) contract(ctx context.Context, e events.ContractStatusChanged) error {
	sponsor := lo.CoalesceOrEmpty(e.SponsorName, e.SponsorID, "Sponsor")
	text := fmt.Sprintf("%s contract for %s is now %s", sponsor, e.Conference.Title, e.NewStatus)
	details := fmt.Sprintf("*%s* contract signature status: %s → *%s*\nAgreement: `%s`", sponsor, e.PreviousStatus, e.NewStatus, e.AgreementID)
	if e.DocumentAttached {
		details += "\nSigned document attached to the sponsor record."
	}
	return h.notifier.PostMessage(ctx, e.Conference.SalesChannel, ports.ChatMessage{
		Text:   text,
		Blocks: []ports.ChatBlock{{Markdown: details}},
	})
}
