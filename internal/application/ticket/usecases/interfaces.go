package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/ticket"
)

// TicketCreatedEvent is published to the realtime channel when a ticket is
// opened, so admin dashboards can refresh without polling.
type TicketCreatedEvent struct {
	TicketID  uint            `json:"ticket_id"`
	Number    string          `json:"number"`
	Subject   string          `json:"subject"`
	Category  ticket.Category `json:"category"`
	CreatorID uint            `json:"creator_id"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventPublisher publishes ticket events to subscribed admin sessions.
type EventPublisher interface {
	PublishTicketCreated(ctx context.Context, event TicketCreatedEvent) error
}

// AdminNotifier sends out-of-band notifications to the support inbox.
type AdminNotifier interface {
	NotifyTicketCreated(ctx context.Context, number, subject, category string) error
}

// MarkdownRenderer renders markdown to sanitized HTML.
type MarkdownRenderer interface {
	RenderHTML(markdown string) (string, error)
}
