package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/shared/errors"
)

func TestAddCommentStatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		startAt    ticket.Status
		isStaff    bool
		wantStatus ticket.Status
	}{
		{name: "staff reply answers open ticket", startAt: ticket.StatusOpen, isStaff: true, wantStatus: ticket.StatusAnswered},
		{name: "user reply reopens answered ticket", startAt: ticket.StatusAnswered, isStaff: false, wantStatus: ticket.StatusOpen},
		{name: "user reply keeps open ticket open", startAt: ticket.StatusOpen, isStaff: false, wantStatus: ticket.StatusOpen},
		{name: "staff reply keeps answered ticket answered", startAt: ticket.StatusAnswered, isStaff: true, wantStatus: ticket.StatusAnswered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructTicket(5, tt.startAt, 42)
			var updated *ticket.Ticket
			ticketRepo := &mockTicketRepository{
				getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return tk, nil
				},
				updateFn: func(ctx context.Context, t *ticket.Ticket) error {
					updated = t
					return nil
				},
			}

			uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockMarkdownRenderer{}, testLogger())

			view, err := uc.Execute(context.Background(), AddCommentCommand{
				UserID:   42,
				IsStaff:  tt.isStaff,
				TicketID: 5,
				Body:     "Looking into it.",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.isStaff, view.FromStaff)
			assert.Equal(t, "<p>Looking into it.</p>", view.BodyHTML)
			require.NotNil(t, updated)
			assert.Equal(t, tt.wantStatus, updated.Status())
		})
	}
}

func TestAddCommentClosedTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(5, ticket.StatusClosed, 42), nil
		},
	}
	commentRepo := &mockCommentRepository{
		saveFn: func(ctx context.Context, c *ticket.Comment) error {
			t.Fatal("closed tickets must not accept comments")
			return nil
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, commentRepo, &mockMarkdownRenderer{}, testLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{UserID: 42, TicketID: 5, Body: "hello?"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

// Non-staff users cannot see or comment on tickets they did not open, and the
// rejection is indistinguishable from a missing ticket.
func TestAddCommentForeignTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(5, ticket.StatusOpen, 99), nil
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockMarkdownRenderer{}, testLogger())

	_, err := uc.Execute(context.Background(), AddCommentCommand{UserID: 42, TicketID: 5, Body: "mine?"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAddCommentStaffOnForeignTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(5, ticket.StatusOpen, 99), nil
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockMarkdownRenderer{}, testLogger())

	view, err := uc.Execute(context.Background(), AddCommentCommand{UserID: 1, IsStaff: true, TicketID: 5, Body: "On it."})
	require.NoError(t, err)
	assert.True(t, view.FromStaff)
}

// A failed render stores the comment with empty HTML rather than failing.
func TestAddCommentRenderFailureIsNonFatal(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTicket(5, ticket.StatusOpen, 42), nil
		},
	}
	renderer := &mockMarkdownRenderer{
		renderFn: func(markdown string) (string, error) {
			return "", fmt.Errorf("render failed")
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, renderer, testLogger())

	view, err := uc.Execute(context.Background(), AddCommentCommand{UserID: 42, TicketID: 5, Body: "plain text"})
	require.NoError(t, err)
	assert.Empty(t, view.BodyHTML)
	assert.Equal(t, "plain text", view.Body)
}
