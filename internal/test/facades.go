package test

import (
	"context"
	"sync/atomic"

	"github.com/tntx/fleetport/internal/adapter/trimble"
	"github.com/tntx/fleetport/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for repair-order endpoints.
type OrderFacadeStub struct {
	RepairOrdersFn func(context.Context, *model.User, string) ([]model.Order, error)
	RepairOrderFn  func(context.Context, *model.User, string) (*model.Order, error)
}

// RepairOrders delegates to provided function or returns a single order.
func (s OrderFacadeStub) RepairOrders(ctx context.Context, user *model.User, fromDate string) ([]model.Order, error) {
	if s.RepairOrdersFn != nil {
		return s.RepairOrdersFn(ctx, user, fromDate)
	}
	return []model.Order{{OrderID: "1", OrderNumber: "100001"}}, nil
}

// RepairOrder returns a predefined order for the given identifier.
func (s OrderFacadeStub) RepairOrder(ctx context.Context, user *model.User, orderID string) (*model.Order, error) {
	if s.RepairOrderFn != nil {
		return s.RepairOrderFn(ctx, user, orderID)
	}
	return &model.Order{OrderID: orderID}, nil
}

// TicketFacadeStub simulates ticket operations.
type TicketFacadeStub struct {
	CreateTicketFn       func(context.Context, *model.User, string, string, string) (*model.Ticket, error)
	TicketsFn            func(context.Context, *model.User) ([]model.Ticket, error)
	TicketFn             func(context.Context, *model.User, int64) (*model.Ticket, error)
	UpdateTicketStatusFn func(context.Context, *model.User, int64, model.TicketStatus) (*model.Ticket, error)
}

// CreateTicket delegates or returns a default open ticket.
func (s TicketFacadeStub) CreateTicket(ctx context.Context, user *model.User, unitNumber, complaint, location string) (*model.Ticket, error) {
	if s.CreateTicketFn != nil {
		return s.CreateTicketFn(ctx, user, unitNumber, complaint, location)
	}
	return &model.Ticket{ID: 1, Number: "TKT-00000001", Status: model.TicketStatusOpen, UnitNumber: unitNumber, Complaint: complaint, Location: location, CreatedBy: user.ID}, nil
}

// Tickets returns predefined tickets for the user.
func (s TicketFacadeStub) Tickets(ctx context.Context, user *model.User) ([]model.Ticket, error) {
	if s.TicketsFn != nil {
		return s.TicketsFn(ctx, user)
	}
	return []model.Ticket{{ID: 1, Number: "TKT-00000001", Status: model.TicketStatusOpen}}, nil
}

// Ticket returns the configured ticket.
func (s TicketFacadeStub) Ticket(ctx context.Context, user *model.User, id int64) (*model.Ticket, error) {
	if s.TicketFn != nil {
		return s.TicketFn(ctx, user, id)
	}
	return &model.Ticket{ID: id, Number: "TKT-00000001", Status: model.TicketStatusOpen}, nil
}

// UpdateTicketStatus records or delegates status transitions.
func (s TicketFacadeStub) UpdateTicketStatus(ctx context.Context, user *model.User, id int64, status model.TicketStatus) (*model.Ticket, error) {
	if s.UpdateTicketStatusFn != nil {
		return s.UpdateTicketStatusFn(ctx, user, id, status)
	}
	return &model.Ticket{ID: id, Status: status}, nil
}

// ChatFacadeStub simulates ticket chat operations.
type ChatFacadeStub struct {
	PostMessageFn    func(context.Context, *model.User, int64, string) (*model.ChatMessage, error)
	TicketMessagesFn func(context.Context, *model.User, int64) ([]model.ChatMessage, error)
}

// PostMessage delegates or echoes the posted message.
func (s ChatFacadeStub) PostMessage(ctx context.Context, user *model.User, ticketID int64, body string) (*model.ChatMessage, error) {
	if s.PostMessageFn != nil {
		return s.PostMessageFn(ctx, user, ticketID, body)
	}
	return &model.ChatMessage{ID: 1, TicketID: ticketID, UserID: user.ID, Body: body}, nil
}

// TicketMessages returns the configured thread.
func (s ChatFacadeStub) TicketMessages(ctx context.Context, user *model.User, ticketID int64) ([]model.ChatMessage, error) {
	if s.TicketMessagesFn != nil {
		return s.TicketMessagesFn(ctx, user, ticketID)
	}
	return []model.ChatMessage{{ID: 1, TicketID: ticketID, Body: "hello"}}, nil
}

// CompanyFacadeStub simulates company directory operations.
type CompanyFacadeStub struct {
	CreateCompanyFn func(context.Context, *model.User, string, string, string) (*model.Company, error)
	CompaniesFn     func(context.Context) ([]model.Company, error)
}

// CreateCompany delegates or returns the company as stored.
func (s CompanyFacadeStub) CreateCompany(ctx context.Context, user *model.User, name, trimbleCode, address string) (*model.Company, error) {
	if s.CreateCompanyFn != nil {
		return s.CreateCompanyFn(ctx, user, name, trimbleCode, address)
	}
	return &model.Company{ID: 1, Name: name, TrimbleCode: trimbleCode, Address: address}, nil
}

// Companies returns the configured directory.
func (s CompanyFacadeStub) Companies(ctx context.Context) ([]model.Company, error) {
	if s.CompaniesFn != nil {
		return s.CompaniesFn(ctx)
	}
	return []model.Company{{ID: 1, Name: "Melton Truck Lines", TrimbleCode: "MELTON"}}, nil
}

// PortalFacadeStub aggregates facade dependencies for HTTP layer tests.
type PortalFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	TicketFacadeStub
	ChatFacadeStub
	CompanyFacadeStub
}

// WarmerFacadeStub mimics the cache warmer's facade dependency.
type WarmerFacadeStub struct {
	WarmFn func(context.Context) error
	calls  int32
}

// WarmOrders counts invocations and optionally delegates.
func (s *WarmerFacadeStub) WarmOrders(ctx context.Context) error {
	atomic.AddInt32(&s.calls, 1)
	if s.WarmFn != nil {
		return s.WarmFn(ctx)
	}
	return nil
}

// WarmCalls reports how many times WarmOrders ran.
func (s *WarmerFacadeStub) WarmCalls() int {
	return int(atomic.LoadInt32(&s.calls))
}

// TrimbleClientStub provides canned SOAP responses.
type TrimbleClientStub struct {
	FetchOrdersFn func(context.Context, trimble.OrderFilter) ([]trimble.RawOrder, error)
	FetchUnitsFn  func(context.Context, trimble.UnitFilter) ([]trimble.RawUnit, error)
	Orders        []trimble.RawOrder
	Units         []trimble.RawUnit
}

// FetchOrders returns configured raw orders.
func (s *TrimbleClientStub) FetchOrders(ctx context.Context, filter trimble.OrderFilter) ([]trimble.RawOrder, error) {
	if s.FetchOrdersFn != nil {
		return s.FetchOrdersFn(ctx, filter)
	}
	return s.Orders, nil
}

// FetchUnits returns configured raw units.
func (s *TrimbleClientStub) FetchUnits(ctx context.Context, filter trimble.UnitFilter) ([]trimble.RawUnit, error) {
	if s.FetchUnitsFn != nil {
		return s.FetchUnitsFn(ctx, filter)
	}
	return s.Units, nil
}

var _ trimble.Client = (*TrimbleClientStub)(nil)
