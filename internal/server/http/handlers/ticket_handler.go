package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/server/http/dto"
)

// TicketHandler serves breakdown tickets and their chat threads.
type TicketHandler struct {
	tickets TicketFacade
	chat    ChatFacade
}

// NewTicketHandler creates TicketHandler instance.
func NewTicketHandler(tickets TicketFacade, chat ChatFacade) *TicketHandler {
	return &TicketHandler{tickets: tickets, chat: chat}
}

// Create handles POST /api/tickets.
func (h *TicketHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ticket, err := h.tickets.CreateTicket(c.Request.Context(), user, req.UnitNumber, req.Complaint, req.Location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// List handles GET /api/tickets.
func (h *TicketHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	tickets, err := h.tickets.Tickets(c.Request.Context(), user)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(tickets) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get handles GET /api/tickets/:ticketId.
func (h *TicketHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, err := ticketID(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ticket, err := h.tickets.Ticket(c.Request.Context(), user, id)
	if err != nil {
		ticketError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// UpdateStatus handles PATCH /api/tickets/:ticketId/status.
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, err := ticketID(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ticket, err := h.tickets.UpdateTicketStatus(c.Request.Context(), user, id, model.TicketStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// PostMessage handles POST /api/tickets/:ticketId/chat.
func (h *TicketHandler) PostMessage(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, err := ticketID(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.chat.PostMessage(c.Request.Context(), user, id, req.Body)
	if err != nil {
		ticketError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// Messages handles GET /api/tickets/:ticketId/chat.
func (h *TicketHandler) Messages(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	id, err := ticketID(c)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msgs, err := h.chat.TicketMessages(c.Request.Context(), user, id)
	if err != nil {
		ticketError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func ticketID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("ticketId"), 10, 64)
}

func ticketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
