package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "studyhall/internal/application/ticket/usecases"
	"studyhall/internal/domain/ticket"
	"studyhall/internal/infrastructure/pubsub"
	"studyhall/internal/interfaces/http/middleware"
	"studyhall/internal/shared/utils"
)

type createTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type addCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// TicketHandler serves support tickets, including the admin realtime feed.
type TicketHandler struct {
	create     *ticketusecases.CreateTicketUseCase
	list       *ticketusecases.ListTicketsUseCase
	get        *ticketusecases.GetTicketUseCase
	addComment *ticketusecases.AddCommentUseCase
	closeTk    *ticketusecases.CloseTicketUseCase
	subscriber *pubsub.TicketEventSubscriber
}

func NewTicketHandler(
	create *ticketusecases.CreateTicketUseCase,
	list *ticketusecases.ListTicketsUseCase,
	get *ticketusecases.GetTicketUseCase,
	addComment *ticketusecases.AddCommentUseCase,
	closeTk *ticketusecases.CloseTicketUseCase,
	subscriber *pubsub.TicketEventSubscriber,
) *TicketHandler {
	return &TicketHandler{
		create:     create,
		list:       list,
		get:        get,
		addComment: addComment,
		closeTk:    closeTk,
		subscriber: subscriber,
	}
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "subject, body, and category are required")
		return
	}

	result, err := h.create.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		Subject:   req.Subject,
		Body:      req.Body,
		Category:  ticket.Category(req.Category),
		CreatorID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

func (h *TicketHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), ticketusecases.ListTicketsCommand{
		UserID:   middleware.UserIDFromContext(c),
		IsStaff:  middleware.IsStaff(c),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), ticketusecases.GetTicketCommand{
		UserID:   middleware.UserIDFromContext(c),
		IsStaff:  middleware.IsStaff(c),
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "body is required")
		return
	}

	result, err := h.addComment.Execute(c.Request.Context(), ticketusecases.AddCommentCommand{
		UserID:   middleware.UserIDFromContext(c),
		IsStaff:  middleware.IsStaff(c),
		TicketID: ticketID,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "comment added")
}

func (h *TicketHandler) Close(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.closeTk.Execute(c.Request.Context(), ticketusecases.CloseTicketCommand{
		UserID:   middleware.UserIDFromContext(c),
		IsStaff:  middleware.IsStaff(c),
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Events streams ticket-created events to admin dashboards over SSE. The
// stream lives until the client disconnects.
func (h *TicketHandler) Events(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	events := make(chan ticketusecases.TicketCreatedEvent, 16)
	go func() {
		defer close(events)
		_ = h.subscriber.Subscribe(c.Request.Context(), func(event ticketusecases.TicketCreatedEvent) {
			select {
			case events <- event:
			default:
				// Slow consumer; drop rather than block the subscriber.
			}
		})
	}()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			_, _ = io.WriteString(c.Writer, "event: ticket.created\ndata: "+string(payload)+"\n\n")
			c.Writer.Flush()
		}
	}
}
