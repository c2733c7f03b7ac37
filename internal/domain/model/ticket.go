package model

import "time"

// TicketStatus describes ticket lifecycle.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// Valid reports whether the status is one of the known ticket statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is a breakdown/repair ticket submitted through the portal.
type Ticket struct {
	ID         int64
	Number     string
	Status     TicketStatus
	UnitNumber string
	Complaint  string
	Location   string
	CompanyID  *int64
	CreatedBy  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
