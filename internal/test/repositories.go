package test

import (
	"context"
	"strings"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role, companyID *int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role, CompanyID: companyID}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CompanyRepositoryStub stores companies in-memory for tests.
type CompanyRepositoryStub struct {
	Companies []model.Company
	Next      int64
	Err       error
}

// Create appends a company unless the trimble code is taken.
func (s *CompanyRepositoryStub) Create(ctx context.Context, name, trimbleCode, address string) (*model.Company, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Companies {
		if strings.EqualFold(c.TrimbleCode, trimbleCode) {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	company := model.Company{ID: s.Next, Name: name, TrimbleCode: trimbleCode, Address: address}
	s.Next++
	s.Companies = append(s.Companies, company)
	return &company, nil
}

// List returns all stored companies.
func (s *CompanyRepositoryStub) List(ctx context.Context) ([]model.Company, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Companies, nil
}

// ListByTrimbleCodes filters stored companies case-insensitively.
func (s *CompanyRepositoryStub) ListByTrimbleCodes(ctx context.Context, codes []string) ([]model.Company, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Company
	for _, c := range s.Companies {
		for _, code := range codes {
			if strings.EqualFold(c.TrimbleCode, code) {
				result = append(result, c)
				break
			}
		}
	}
	return result, nil
}

// TicketRepositoryStub stores tickets in-memory for tests.
type TicketRepositoryStub struct {
	Tickets []model.Ticket
	Next    int64
	Err     error
}

// Create assigns an id and stores the ticket.
func (s *TicketRepositoryStub) Create(ctx context.Context, t *model.Ticket) (*model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := *t
	created.ID = s.Next
	s.Next++
	s.Tickets = append(s.Tickets, created)
	return &created, nil
}

// GetByID fetches a stored ticket or returns not found.
func (s *TicketRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tickets {
		if s.Tickets[i].ID == id {
			t := s.Tickets[i]
			return &t, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List applies the filter over stored tickets.
func (s *TicketRepositoryStub) List(ctx context.Context, filter repository.TicketFilter) ([]model.Ticket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Ticket
	for _, t := range s.Tickets {
		if filter.CompanyID != nil && (t.CompanyID == nil || *t.CompanyID != *filter.CompanyID) {
			continue
		}
		if filter.CreatedBy != nil && t.CreatedBy != *filter.CreatedBy {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// UpdateStatus mutates a stored ticket or returns not found.
func (s *TicketRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.TicketStatus) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Tickets {
		if s.Tickets[i].ID == id {
			s.Tickets[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ChatRepositoryStub stores chat messages in-memory for tests.
type ChatRepositoryStub struct {
	Messages []model.ChatMessage
	Next     int64
	Err      error
}

// Append stores a message with a generated id.
func (s *ChatRepositoryStub) Append(ctx context.Context, ticketID, userID int64, body string) (*model.ChatMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	msg := model.ChatMessage{ID: s.Next, TicketID: ticketID, UserID: userID, Body: body}
	s.Next++
	s.Messages = append(s.Messages, msg)
	return &msg, nil
}

// ListByTicket returns stored messages for the ticket in insertion order.
func (s *ChatRepositoryStub) ListByTicket(ctx context.Context, ticketID int64) ([]model.ChatMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.ChatMessage
	for _, m := range s.Messages {
		if m.TicketID == ticketID {
			result = append(result, m)
		}
	}
	return result, nil
}
