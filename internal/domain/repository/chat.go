package repository

import (
	"context"

	"github.com/tntx/fleetport/internal/domain/model"
)

// ChatRepository describes persistence operations with ticket chat threads.
type ChatRepository interface {
	Append(ctx context.Context, ticketID, userID int64, body string) (*model.ChatMessage, error)
	ListByTicket(ctx context.Context, ticketID int64) ([]model.ChatMessage, error)
}
