package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject   string
	Body      string
	Category  ticket.Category
	CreatorID uint
}

type CreateTicketResult struct {
	TicketID  uint            `json:"ticket_id"`
	Number    string          `json:"number"`
	Subject   string          `json:"subject"`
	Category  ticket.Category `json:"category"`
	Status    ticket.Status   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateTicketUseCase opens a support ticket. The realtime event and the
// admin email are both best effort: the ticket is created even when neither
// can be delivered.
type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  EventPublisher
	notifier   AdminNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	publisher EventPublisher,
	notifier AdminNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	t, err := ticket.NewTicket(cmd.Subject, cmd.Body, cmd.Category, cmd.CreatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "creator_id", cmd.CreatorID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	event := TicketCreatedEvent{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Subject:   t.Subject(),
		Category:  t.Category(),
		CreatorID: t.CreatorID(),
		CreatedAt: t.CreatedAt(),
	}
	if err := uc.publisher.PublishTicketCreated(ctx, event); err != nil {
		uc.logger.Warnw("failed to publish ticket event", "ticket_id", t.ID(), "error", err)
	}

	if err := uc.notifier.NotifyTicketCreated(ctx, t.Number(), t.Subject(), string(t.Category())); err != nil {
		uc.logger.Warnw("failed to notify support inbox", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "number", t.Number(), "creator_id", t.CreatorID())

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Number:    t.Number(),
		Subject:   t.Subject(),
		Category:  t.Category(),
		Status:    t.Status(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
