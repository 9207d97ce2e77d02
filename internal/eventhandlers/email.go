package eventhandlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/ports"
)

var proposalEmailTemplates = map[events.Action]string{
	events.ActionAccept: templateProposalAccept,
	events.ActionReject: templateProposalReject,
	events.ActionRemind: templateProposalRemind,
}

// ProposalEmailHandler emails the primary speaker about accept, reject and
// remind actions when the publisher asked for notification.
type ProposalEmailHandler struct {
	sender    ports.EmailSender
	templates *emailTemplates
	publicURL string
	log       *slog.Logger
}

// NewProposalEmailHandler renders proposal decision emails linking back to publicURL.
func NewProposalEmailHandler(sender ports.EmailSender, templates *emailTemplates, publicURL string, log *slog.Logger) *ProposalEmailHandler {
	return &ProposalEmailHandler{
		sender:    sender,
		templates: templates,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log,
	}
}

// Name identifies the handler in logs and metrics.
func (h *ProposalEmailHandler) Name() string { return "proposal-email" }

type proposalEmailData struct {
	Speaker    events.Speaker
	Proposal   events.Proposal
	Conference events.Conference
	Comment    string
	Link       string
}

// Handle emails the speakers of a proposal whose status changed.
func (h *ProposalEmailHandler) Handle(ctx context.Context, event events.Event) error {
	changed, ok := event.(events.ProposalStatusChanged)
	if !ok || !changed.Metadata.ShouldNotify {
		return nil
	}
	name, ok := proposalEmailTemplates[changed.Action]
	if !ok {
		return nil
	}
	speaker, ok := changed.PrimarySpeaker()
	if !ok || !speaker.HasEmail() {
		return nil
	}

	email, err := h.templates.render(name, speaker.Email, proposalEmailData{
		Speaker:    speaker,
		Proposal:   changed.Proposal,
		Conference: changed.Conference,
		Comment:    changed.Metadata.Comment,
		Link:       h.proposalLink(changed),
	})
	if err != nil {
		return err
	}
	if err := h.sender.Send(ctx, email); err != nil {
		return err
	}
	h.log.InfoContext(ctx, "Proposal notification sent",
		"proposal_id", changed.Proposal.ID,
		"action", string(changed.Action),
		"speaker_id", speaker.ID,
	)
	return nil
}

func (h *ProposalEmailHandler) proposalLink(changed events.ProposalStatusChanged) string {
	base := h.publicURL
	if domain := strings.TrimSpace(changed.Conference.Domain); domain != "" {
		base = "https://" + domain
	}
	if base == "" {
		return ""
	}
	return base + "/cfp/proposals/" + changed.Proposal.ID
}
