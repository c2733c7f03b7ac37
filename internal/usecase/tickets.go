package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// TicketUseCase implements maintenance ticket workflows with role scoping.
type TicketUseCase struct {
	tickets repository.TicketRepository
}

// NewTicketUseCase constructs TicketUseCase.
func NewTicketUseCase(tickets repository.TicketRepository) *TicketUseCase {
	return &TicketUseCase{tickets: tickets}
}

// TicketInput carries fields supplied by the creator of a ticket.
type TicketInput struct {
	UnitNumber string
	Complaint  string
	Location   string
}

// Create opens a new ticket on behalf of a user. Drivers and company users
// get the ticket attached to their own company.
func (u *TicketUseCase) Create(ctx context.Context, user *model.User, in TicketInput) (*model.Ticket, error) {
	in.UnitNumber = strings.TrimSpace(in.UnitNumber)
	in.Complaint = strings.TrimSpace(in.Complaint)
	if in.UnitNumber == "" || in.Complaint == "" {
		return nil, fmt.Errorf("ticket: unit number and complaint are required")
	}

	t := &model.Ticket{
		Number:     newTicketNumber(),
		Status:     model.TicketStatusOpen,
		UnitNumber: in.UnitNumber,
		Complaint:  in.Complaint,
		Location:   strings.TrimSpace(in.Location),
		CompanyID:  user.CompanyID,
		CreatedBy:  user.ID,
	}

	return u.tickets.Create(ctx, t)
}

// Get fetches a ticket the user is allowed to see.
func (u *TicketUseCase) Get(ctx context.Context, user *model.User, id int64) (*model.Ticket, error) {
	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !TicketVisibleTo(user, t) {
		return nil, domainErrors.ErrForbidden
	}
	return t, nil
}

// List returns tickets scoped to the caller's role: admins and agents see
// everything, company users see their company, drivers their own tickets.
func (u *TicketUseCase) List(ctx context.Context, user *model.User) ([]model.Ticket, error) {
	filter := repository.TicketFilter{}
	switch user.Role {
	case model.RoleAdmin, model.RoleAgent:
	case model.RoleCompanyUser:
		filter.CompanyID = user.CompanyID
	default:
		filter.CreatedBy = &user.ID
	}
	return u.tickets.List(ctx, filter)
}

// UpdateStatus transitions a ticket. Only admins and agents may do this.
func (u *TicketUseCase) UpdateStatus(ctx context.Context, user *model.User, id int64, status model.TicketStatus) (*model.Ticket, error) {
	if user.Role != model.RoleAdmin && user.Role != model.RoleAgent {
		return nil, domainErrors.ErrForbidden
	}
	if !status.Valid() {
		return nil, fmt.Errorf("ticket: unknown status %q", status)
	}
	if err := u.tickets.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.tickets.GetByID(ctx, id)
}

// TicketVisibleTo reports whether a user may see a ticket.
func TicketVisibleTo(user *model.User, t *model.Ticket) bool {
	switch user.Role {
	case model.RoleAdmin, model.RoleAgent:
		return true
	case model.RoleCompanyUser:
		return user.CompanyID != nil && t.CompanyID != nil && *user.CompanyID == *t.CompanyID
	default:
		return t.CreatedBy == user.ID
	}
}

func newTicketNumber() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// rand.Read on crypto/rand does not fail on supported platforms
		panic(err)
	}
	return "TKT-" + strings.ToUpper(hex.EncodeToString(b[:]))
}
