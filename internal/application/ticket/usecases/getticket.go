package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type GetTicketCommand struct {
	UserID   uint
	IsStaff  bool
	TicketID uint
}

type CommentView struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	FromStaff bool      `json:"from_staff"`
	CreatedAt time.Time `json:"created_at"`
}

type GetTicketResult struct {
	Ticket   TicketSummary `json:"ticket"`
	Body     string        `json:"body"`
	Comments []CommentView `json:"comments"`
}

// GetTicketUseCase loads a ticket with its comment thread. Tickets owned by
// other users are indistinguishable from missing unless the caller is staff.
type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}
	if t == nil || (!cmd.IsStaff && t.CreatorID() != cmd.UserID) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID(),
			AuthorID:  c.AuthorID(),
			Body:      c.Body(),
			BodyHTML:  c.BodyHTML(),
			FromStaff: c.FromStaff(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return &GetTicketResult{
		Ticket: TicketSummary{
			ID:        t.ID(),
			Number:    t.Number(),
			Subject:   t.Subject(),
			Category:  t.Category(),
			Status:    t.Status(),
			CreatorID: t.CreatorID(),
			CreatedAt: t.CreatedAt(),
			UpdatedAt: t.UpdatedAt(),
		},
		Body:     t.Body(),
		Comments: views,
	}, nil
}
