package ticket

import "context"

// Filter narrows ticket listings.
type Filter struct {
	Status   *Status
	Category *Category
	Page     int
	PageSize int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	GetUserTickets(ctx context.Context, userID uint, filter Filter) ([]*Ticket, int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
