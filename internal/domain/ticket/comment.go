package ticket

import (
	"fmt"
	"time"
)

// Comment is a reply on a ticket, from the creator or from staff.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	body      string
	bodyHTML  string
	fromStaff bool
	createdAt time.Time
}

func NewComment(ticketID, authorID uint, body, bodyHTML string, fromStaff bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("body exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		bodyHTML:  bodyHTML,
		fromStaff: fromStaff,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructComment reconstructs a comment from persistence.
func ReconstructComment(id, ticketID, authorID uint, body, bodyHTML string, fromStaff bool, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		bodyHTML:  bodyHTML,
		fromStaff: fromStaff,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) BodyHTML() string     { return c.bodyHTML }
func (c *Comment) FromStaff() bool      { return c.fromStaff }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// SetID sets the comment ID (only for persistence layer use)
func (c *Comment) SetID(id uint) error {
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
