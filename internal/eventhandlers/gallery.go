package eventhandlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/fr0stylo/confhub/internal/events"
	"github.com/fr0stylo/confhub/internal/ports"
)

// GalleryNotifier emails every tagged speaker, at most batchSize sends at a
// time, and logs one summary whose severity reflects the aggregate outcome.
type GalleryNotifier struct {
	sender    ports.EmailSender
	templates *emailTemplates
	batchSize int
	publicURL string
	log       *slog.Logger
}

// NewGalleryNotifier emails each tagged speaker in batches of batchSize.
func NewGalleryNotifier(sender ports.EmailSender, templates *emailTemplates, batchSize int, publicURL string, log *slog.Logger) *GalleryNotifier {
	if batchSize <= 0 {
		batchSize = defaultGalleryBatchSize
	}
	return &GalleryNotifier{
		sender:    sender,
		templates: templates,
		batchSize: batchSize,
		publicURL: strings.TrimRight(publicURL, "/"),
		log:       log,
	}
}

// Name identifies the handler in logs and metrics.
func (h *GalleryNotifier) Name() string { return "gallery-tag-notifier" }

type galleryEmailData struct {
	Speaker    events.Speaker
	Image      events.GalleryImage
	Conference events.Conference
	TaggedBy   string
}

type gallerySend struct {
	speaker events.Speaker
	err     error
}

// Handle emails every speaker tagged in a GallerySpeakerTagged event.
func (h *GalleryNotifier) Handle(ctx context.Context, event events.Event) error {
	tagged, ok := event.(events.GallerySpeakerTagged)
	if !ok {
		return nil
	}

	eligible, skipped := lo.FilterReject(tagged.Speakers, func(s events.Speaker, _ int) bool { return s.HasEmail() })
	for _, speaker := range skipped {
		h.log.InfoContext(ctx, "Skipping gallery notification for speaker without email",
			"image_id", tagged.Image.ID,
			"speaker_id", speaker.ID,
		)
	}
	if len(eligible) == 0 {
		return nil
	}

	var succeeded, failed int
	failures := make([]string, 0)
	for _, batch := range lo.Chunk(eligible, h.batchSize) {
		p := pool.NewWithResults[gallerySend]().WithMaxGoroutines(h.batchSize)
		for _, speaker := range batch {
			p.Go(func() gallerySend {
				return gallerySend{speaker: speaker, err: h.send(ctx, tagged, speaker)}
			})
		}
		for _, result := range p.Wait() {
			if result.err != nil {
				failed++
				failures = append(failures, result.speaker.Name+": "+result.err.Error())
				continue
			}
			succeeded++
		}
	}

	attrs := []any{
		"image_id", tagged.Image.ID,
		"attempted", len(eligible),
		"succeeded", succeeded,
		"failed", failed,
		"skipped", len(skipped),
	}
	switch {
	case failed == len(eligible):
		h.log.ErrorContext(ctx, "Gallery tag notifications failed", append(attrs, "failures", failures)...)
	case failed > 0:
		h.log.WarnContext(ctx, "Gallery tag notifications partially failed", append(attrs, "failures", failures)...)
	default:
		h.log.InfoContext(ctx, "Gallery tag notifications sent", attrs...)
	}
	return nil
}

func (h *GalleryNotifier) send(ctx context.Context, tagged events.GallerySpeakerTagged, speaker events.Speaker) error {
	image := tagged.Image
	if strings.HasPrefix(image.URL, "/") && h.publicURL != "" {
		image.URL = h.publicURL + image.URL
	}
	email, err := h.templates.render(templateGalleryTagged, speaker.Email, galleryEmailData{
		Speaker:    speaker,
		Image:      image,
		Conference: tagged.Conference,
		TaggedBy:   tagged.TaggedBy,
	})
	if err != nil {
		return err
	}
	return h.sender.Send(ctx, email)
}
