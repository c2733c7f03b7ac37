package repository

import (
	"context"

	"github.com/tntx/fleetport/internal/domain/model"
)

// TicketFilter scopes ticket listings by role. Zero value means no restriction.
type TicketFilter struct {
	CompanyID *int64
	CreatedBy *int64
}

// TicketRepository describes persistence operations with breakdown tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *model.Ticket) (*model.Ticket, error)
	GetByID(ctx context.Context, id int64) (*model.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]model.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status model.TicketStatus) error
}
