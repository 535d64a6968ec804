package usecases

import (
	"context"
	"fmt"
	"time"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type ListTicketsCommand struct {
	UserID   uint
	IsStaff  bool
	Status   string
	Category string
	Page     int
	PageSize int
}

type TicketSummary struct {
	ID        uint            `json:"id"`
	Number    string          `json:"number"`
	Subject   string          `json:"subject"`
	Category  ticket.Category `json:"category"`
	Status    ticket.Status   `json:"status"`
	CreatorID uint            `json:"creator_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ListTicketsResult struct {
	Tickets  []TicketSummary `json:"tickets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListTicketsUseCase lists tickets. Staff see every ticket; users see only
// their own.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	filter := ticket.Filter{Page: cmd.Page, PageSize: cmd.PageSize}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	if cmd.Status != "" {
		s := ticket.Status(cmd.Status)
		if !s.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", cmd.Status))
		}
		filter.Status = &s
	}
	if cmd.Category != "" {
		c := ticket.Category(cmd.Category)
		if !c.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid category: %s", cmd.Category))
		}
		filter.Category = &c
	}

	var (
		tickets []*ticket.Ticket
		total   int64
		err     error
	)
	if cmd.IsStaff {
		tickets, total, err = uc.ticketRepo.List(ctx, filter)
	} else {
		tickets, total, err = uc.ticketRepo.GetUserTickets(ctx, cmd.UserID, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			ID:        t.ID(),
			Number:    t.Number(),
			Subject:   t.Subject(),
			Category:  t.Category(),
			Status:    t.Status(),
			CreatorID: t.CreatorID(),
			CreatedAt: t.CreatedAt(),
			UpdatedAt: t.UpdatedAt(),
		})
	}

	return &ListTicketsResult{
		Tickets:  summaries,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
