package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// ChatUseCase manages per-ticket message threads.
type ChatUseCase struct {
	tickets repository.TicketRepository
	chats   repository.ChatRepository
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(tickets repository.TicketRepository, chats repository.ChatRepository) *ChatUseCase {
	return &ChatUseCase{tickets: tickets, chats: chats}
}

// Post appends a message to a ticket's thread. The caller must be able to
// see the ticket.
func (u *ChatUseCase) Post(ctx context.Context, user *model.User, ticketID int64, body string) (*model.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("chat: message body is required")
	}

	t, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !TicketVisibleTo(user, t) {
		return nil, domainErrors.ErrForbidden
	}

	return u.chats.Append(ctx, t.ID, user.ID, body)
}

// List returns a ticket's thread in chronological order.
func (u *ChatUseCase) List(ctx context.Context, user *model.User, ticketID int64) ([]model.ChatMessage, error) {
	t, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !TicketVisibleTo(user, t) {
		return nil, domainErrors.ErrForbidden
	}
	return u.chats.ListByTicket(ctx, t.ID)
}
