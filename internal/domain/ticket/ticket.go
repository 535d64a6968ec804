package ticket

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusAnswered Status = "answered"
	StatusClosed   Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusAnswered, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

type Category string

const (
	CategoryTechnical Category = "technical"
	CategoryBilling   Category = "billing"
	CategoryContent   Category = "content"
	CategoryOther     Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryTechnical, CategoryBilling, CategoryContent, CategoryOther:
		return true
	}
	return false
}

// Ticket is the support ticket aggregate root.
type Ticket struct {
	id        uint
	number    string
	subject   string
	body      string
	category  Category
	status    Status
	creatorID uint
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(subject, body string, category Category, creatorID uint) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > 5000 {
		return nil, fmt.Errorf("body exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		subject:   subject,
		body:      body,
		category:  category,
		status:    StatusOpen,
		creatorID: creatorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence.
func ReconstructTicket(
	id uint,
	number, subject, body string,
	category Category,
	status Status,
	creatorID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Ticket{
		id:        id,
		number:    number,
		subject:   subject,
		body:      body,
		category:  category,
		status:    status,
		creatorID: creatorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) Number() string       { return t.number }
func (t *Ticket) Subject() string      { return t.subject }
func (t *Ticket) Body() string         { return t.body }
func (t *Ticket) Category() Category   { return t.category }
func (t *Ticket) Status() Status       { return t.status }
func (t *Ticket) CreatorID() uint      { return t.creatorID }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber sets the display number (only for persistence layer use)
func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

// MarkAnswered transitions an open ticket to answered. Staff replies call
// this; user replies move an answered ticket back to open.
func (t *Ticket) MarkAnswered() error {
	if t.status == StatusClosed {
		return fmt.Errorf("cannot answer a closed ticket")
	}
	t.status = StatusAnswered
	t.updatedAt = time.Now().UTC()
	return nil
}

// Reopen moves an answered ticket back to open.
func (t *Ticket) Reopen() error {
	if t.status == StatusClosed {
		return fmt.Errorf("cannot reopen a closed ticket")
	}
	t.status = StatusOpen
	t.updatedAt = time.Now().UTC()
	return nil
}

// Close closes the ticket. Closed is terminal.
func (t *Ticket) Close() error {
	if t.status == StatusClosed {
		return nil
	}
	t.status = StatusClosed
	t.updatedAt = time.Now().UTC()
	return nil
}
