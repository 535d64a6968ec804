package usecases

import (
	"context"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type CloseTicketCommand struct {
	UserID   uint
	IsStaff  bool
	TicketID uint
}

// CloseTicketUseCase closes a ticket. Closing is idempotent and terminal.
type CloseTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCloseTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CloseTicketUseCase {
	return &CloseTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to close ticket")
	}
	if t == nil || (!cmd.IsStaff && t.CreatorID() != cmd.UserID) {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := t.Close(); err != nil {
		return errors.NewConflictError(err.Error())
	}
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return errors.NewInternalError("failed to close ticket")
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "by_staff", cmd.IsStaff)
	return nil
}
