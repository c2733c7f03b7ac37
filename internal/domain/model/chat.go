package model

import "time"

// ChatMessage is a single entry in a ticket's conversation thread.
type ChatMessage struct {
	ID        int64
	TicketID  int64
	UserID    int64
	Body      string
	CreatedAt time.Time
}
