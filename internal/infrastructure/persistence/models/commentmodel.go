package models

import (
	"time"

	"studyhall/internal/domain/ticket"
)

// CommentModel is the gorm model for ticket comments.
type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null"`
	Body      string    `gorm:"type:text;not null"`
	BodyHTML  string    `gorm:"type:text"`
	FromStaff bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

// NewCommentModelFromDomain converts a domain comment to its gorm model.
func NewCommentModelFromDomain(c *ticket.Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		BodyHTML:  c.BodyHTML(),
		FromStaff: c.FromStaff(),
		CreatedAt: c.CreatedAt(),
	}
}

// ToDomain converts the gorm model to a domain comment.
func (m *CommentModel) ToDomain() (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		m.ID,
		m.TicketID,
		m.AuthorID,
		m.Body,
		m.BodyHTML,
		m.FromStaff,
		m.CreatedAt,
	)
}
