package usecases

import (
	"context"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type AddCommentCommand struct {
	UserID   uint
	IsStaff  bool
	TicketID uint
	Body     string
}

// AddCommentUseCase replies on a ticket. A staff reply marks the ticket
// answered; a user reply reopens it. Closed tickets reject replies.
type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	markdown    MarkdownRenderer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	markdown MarkdownRenderer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		markdown:    markdown,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*CommentView, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to add comment")
	}
	if t == nil || (!cmd.IsStaff && t.CreatorID() != cmd.UserID) {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	if t.Status() == ticket.StatusClosed {
		return nil, errors.NewConflictError("ticket is closed")
	}

	bodyHTML, err := uc.markdown.RenderHTML(cmd.Body)
	if err != nil {
		uc.logger.Warnw("failed to render comment HTML", "ticket_id", t.ID(), "error", err)
		bodyHTML = ""
	}

	c, err := ticket.NewComment(t.ID(), cmd.UserID, cmd.Body, bodyHTML, cmd.IsStaff)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to add comment")
	}

	if cmd.IsStaff {
		err = t.MarkAnswered()
	} else {
		err = t.Reopen()
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to add comment")
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "from_staff", cmd.IsStaff)

	return &CommentView{
		ID:        c.ID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		BodyHTML:  c.BodyHTML(),
		FromStaff: c.FromStaff(),
		CreatedAt: c.CreatedAt(),
	}, nil
}
