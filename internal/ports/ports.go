// Package ports declares the outbound collaborators used by webhook and event
// handler code, so transports can be swapped and mocked.
package ports

import (
	"context"

	"github.com/fr0stylo/confhub/internal/docstore"
	"github.com/fr0stylo/confhub/internal/events"
)

// DocumentStore is the document and asset store.
type DocumentStore interface {
	docstore.Store
}

// EventPublisher publishes domain events without waiting for handlers.
type EventPublisher interface {
	PublishAsync(ctx context.Context, event events.Event)
}

// Email is one rendered outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
	Tags    map[string]string
}

// EmailSender delivers one email.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// ChatMessage is a chat post with a plain-text fallback and optional blocks.
type ChatMessage struct {
	Text   string
	Blocks []ChatBlock
}

// ChatBlock is one markdown section of a chat message.
type ChatBlock struct {
	Markdown string
}

// ChatNotifier posts messages to chat channels.
type ChatNotifier interface {
	PostMessage(ctx context.Context, channel string, message ChatMessage) error
}

// Contact is a mailing-list member.
type Contact struct {
	Email     string
	FirstName string
	LastName  string
}

// AudienceClient manages mailing-list membership.
type AudienceClient interface {
	AddContact(ctx context.Context, audienceID string, contact Contact) error
	RemoveContact(ctx context.Context, audienceID, email string) error
}
