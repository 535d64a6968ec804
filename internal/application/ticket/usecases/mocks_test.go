package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepository struct {
	saveFn           func(ctx context.Context, t *ticket.Ticket) error
	updateFn         func(ctx context.Context, t *ticket.Ticket) error
	getByIDFn        func(ctx context.Context, id uint) (*ticket.Ticket, error)
	listFn           func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	getUserTicketsFn func(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, t)
	}
	if err := t.SetID(1); err != nil {
		return err
	}
	return t.SetNumber("TK-000001")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) GetUserTickets(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.getUserTicketsFn != nil {
		return m.getUserTicketsFn(ctx, userID, filter)
	}
	return nil, 0, nil
}

type mockCommentRepository struct {
	saveFn          func(ctx context.Context, c *ticket.Comment) error
	getByTicketIDFn func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.getByTicketIDFn != nil {
		return m.getByTicketIDFn(ctx, ticketID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFn func(ctx context.Context, event TicketCreatedEvent) error
	published []TicketCreatedEvent
}

func (m *mockEventPublisher) PublishTicketCreated(ctx context.Context, event TicketCreatedEvent) error {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}

type mockAdminNotifier struct {
	notifyFn func(ctx context.Context, number, subject, category string) error
	notified int
}

func (m *mockAdminNotifier) NotifyTicketCreated(ctx context.Context, number, subject, category string) error {
	m.notified++
	if m.notifyFn != nil {
		return m.notifyFn(ctx, number, subject, category)
	}
	return nil
}

type mockMarkdownRenderer struct {
	renderFn func(markdown string) (string, error)
}

func (m *mockMarkdownRenderer) RenderHTML(markdown string) (string, error) {
	if m.renderFn != nil {
		return m.renderFn(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func reconstructTicket(id uint, status ticket.Status, creatorID uint) *ticket.Ticket {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	t, err := ticket.ReconstructTicket(
		id, fmt.Sprintf("TK-%06d", id), "Broken quiz", "The quiz page 404s.",
		ticket.CategoryTechnical, status, creatorID, created, created,
	)
	if err != nil {
		panic(err)
	}
	return t
}
