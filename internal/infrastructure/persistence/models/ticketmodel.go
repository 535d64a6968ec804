package models

import (
	"time"

	"studyhall/internal/domain/ticket"
)

// TicketModel is the gorm model for support tickets.
type TicketModel struct {
	ID        uint      `gorm:"primaryKey"`
	Number    string    `gorm:"size:20;uniqueIndex"`
	Subject   string    `gorm:"size:200;not null"`
	Body      string    `gorm:"type:text;not null"`
	Category  string    `gorm:"size:20;not null;index"`
	Status    string    `gorm:"size:20;not null;index"`
	CreatorID uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// NewTicketModelFromDomain converts a domain ticket to its gorm model.
func NewTicketModelFromDomain(t *ticket.Ticket) *TicketModel {
	return &TicketModel{
		ID:        t.ID(),
		Number:    t.Number(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		Category:  string(t.Category()),
		Status:    string(t.Status()),
		CreatorID: t.CreatorID(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

// ToDomain converts the gorm model to a domain ticket.
func (m *TicketModel) ToDomain() (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		m.ID,
		m.Number,
		m.Subject,
		m.Body,
		ticket.Category(m.Category),
		ticket.Status(m.Status),
		m.CreatorID,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
