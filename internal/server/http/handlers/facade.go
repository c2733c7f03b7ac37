package handlers

import (
	"context"

	"github.com/tntx/fleetport/internal/domain/model"
	pkgAuth "github.com/tntx/fleetport/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, role model.Role, companyID *int64) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates repair-order operations exposed via HTTP.
type OrderFacade interface {
	RepairOrders(ctx context.Context, user *model.User, fromDate string) ([]model.Order, error)
	RepairOrder(ctx context.Context, user *model.User, orderID string) (*model.Order, error)
}

// TicketFacade provides breakdown ticket operations.
type TicketFacade interface {
	CreateTicket(ctx context.Context, user *model.User, unitNumber, complaint, location string) (*model.Ticket, error)
	Tickets(ctx context.Context, user *model.User) ([]model.Ticket, error)
	Ticket(ctx context.Context, user *model.User, id int64) (*model.Ticket, error)
	UpdateTicketStatus(ctx context.Context, user *model.User, id int64, status model.TicketStatus) (*model.Ticket, error)
}

// ChatFacade provides ticket chat operations.
type ChatFacade interface {
	PostMessage(ctx context.Context, user *model.User, ticketID int64, body string) (*model.ChatMessage, error)
	TicketMessages(ctx context.Context, user *model.User, ticketID int64) ([]model.ChatMessage, error)
}

// CompanyFacade provides company directory operations.
type CompanyFacade interface {
	CreateCompany(ctx context.Context, user *model.User, name, trimbleCode, address string) (*model.Company, error)
	Companies(ctx context.Context) ([]model.Company, error)
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AuthFacade
	OrderFacade
	TicketFacade
	ChatFacade
	CompanyFacade
}
