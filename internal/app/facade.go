package app

import (
	"context"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	pkgAuth "github.com/tntx/fleetport/internal/pkg/auth"
	"github.com/tntx/fleetport/internal/usecase"
)

// PortalFacade aggregates the portal use cases behind one surface consumed by
// the HTTP layer and the cache warmer.
type PortalFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.RepairOrderUseCase
	tickets   *usecase.TicketUseCase
	chat      *usecase.ChatUseCase
	companies *usecase.CompanyUseCase
}

// NewPortalFacade constructs PortalFacade.
func NewPortalFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.RepairOrderUseCase,
	tickets *usecase.TicketUseCase,
	chat *usecase.ChatUseCase,
	companies *usecase.CompanyUseCase,
) *PortalFacade {
	return &PortalFacade{auth: auth, orders: orders, tickets: tickets, chat: chat, companies: companies}
}

func (f *PortalFacade) Register(ctx context.Context, login, password string, role model.Role, companyID *int64) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, role, companyID)
	return token, err
}

func (f *PortalFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PortalFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *PortalFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

// RepairOrders returns the cached order set filtered down to what the user may
// see.
func (f *PortalFacade) RepairOrders(ctx context.Context, user *model.User, fromDate string) ([]model.Order, error) {
	orders, err := f.orders.List(ctx, usecase.OrderQuery{FromDate: fromDate})
	if err != nil {
		return nil, err
	}
	visible := usecase.OrderVisibleTo(user)
	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if visible(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// RepairOrder returns one order with its related road-call orders attached.
// Orders outside the user's scope read as absent.
func (f *PortalFacade) RepairOrder(ctx context.Context, user *model.User, orderID string) (*model.Order, error) {
	order, err := f.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !usecase.OrderVisibleTo(user)(*order) {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// WarmOrders refreshes the default order query for the background warmer.
func (f *PortalFacade) WarmOrders(ctx context.Context) error {
	return f.orders.Warm(ctx)
}

func (f *PortalFacade) CreateTicket(ctx context.Context, user *model.User, unitNumber, complaint, location string) (*model.Ticket, error) {
	return f.tickets.Create(ctx, user, usecase.TicketInput{UnitNumber: unitNumber, Complaint: complaint, Location: location})
}

func (f *PortalFacade) Tickets(ctx context.Context, user *model.User) ([]model.Ticket, error) {
	return f.tickets.List(ctx, user)
}

func (f *PortalFacade) Ticket(ctx context.Context, user *model.User, id int64) (*model.Ticket, error) {
	return f.tickets.Get(ctx, user, id)
}

func (f *PortalFacade) UpdateTicketStatus(ctx context.Context, user *model.User, id int64, status model.TicketStatus) (*model.Ticket, error) {
	return f.tickets.UpdateStatus(ctx, user, id, status)
}

func (f *PortalFacade) PostMessage(ctx context.Context, user *model.User, ticketID int64, body string) (*model.ChatMessage, error) {
	return f.chat.Post(ctx, user, ticketID, body)
}

func (f *PortalFacade) TicketMessages(ctx context.Context, user *model.User, ticketID int64) ([]model.ChatMessage, error) {
	return f.chat.List(ctx, user, ticketID)
}

func (f *PortalFacade) CreateCompany(ctx context.Context, user *model.User, name, trimbleCode, address string) (*model.Company, error) {
	return f.companies.Create(ctx, user, usecase.CompanyInput{Name: name, TrimbleCode: trimbleCode, Address: address})
}

func (f *PortalFacade) Companies(ctx context.Context) ([]model.Company, error) {
	return f.companies.List(ctx)
}
