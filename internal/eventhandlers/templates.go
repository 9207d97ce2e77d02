package eventhandlers

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/fr0stylo/confhub/internal/ports"
)

//go:embed templates/*.md
var templateFS embed.FS

// Each template file defines "subject" and "body"; the body is Markdown.
const (
	templateProposalAccept = "proposal_accept"
	templateProposalReject = "proposal_reject"
	templateProposalRemind = "proposal_remind"
	templateGalleryTagged  = "gallery_tagged"
)

type emailTemplates struct {
	sets     map[string]*template.Template
	markdown goldmark.Markdown
}

func loadTemplates() (*emailTemplates, error) {
	entries, err := fs.Glob(templateFS, "templates/*.md")
	if err != nil {
		return nil, err
	}
	sets := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".md")
		set, err := template.ParseFS(templateFS, entry)
		if err != nil {
			return nil, fmt.Errorf("parse email template %s: %w", name, err)
		}
		sets[name] = set
	}
	return &emailTemplates{
		sets:     sets,
		markdown: goldmark.New(goldmark.WithExtensions(extension.Linkify)),
	}, nil
}

// render executes the named template and returns an email addressed to to.
func (t *emailTemplates) render(name, to string, data any) (ports.Email, error) {
	set, ok := t.sets[name]
	if !ok {
		return ports.Email{}, fmt.Errorf("unknown email template %q", name)
	}

	var subject, body bytes.Buffer
	if err := set.ExecuteTemplate(&subject, "subject", data); err != nil {
		return ports.Email{}, fmt.Errorf("render %s subject: %w", name, err)
	}
	if err := set.ExecuteTemplate(&body, "body", data); err != nil {
		return ports.Email{}, fmt.Errorf("render %s body: %w", name, err)
	}

	var html bytes.Buffer
	if err := t.markdown.Convert(body.Bytes(), &html); err != nil {
		return ports.Email{}, fmt.Errorf("render %s markdown: %w", name, err)
	}
	return ports.Email{
		To:      to,
		Subject: strings.TrimSpace(subject.String()),
		HTML:    html.String(),
		Text:    strings.TrimSpace(body.String()),
		Tags:    map[string]string{"template": name},
	}, nil
}
