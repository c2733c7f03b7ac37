package dto

// CreateTicketRequest describes the breakdown ticket payload.
type CreateTicketRequest struct {
	UnitNumber string `json:"unitNumber"`
	Complaint  string `json:"complaint"`
	Location   string `json:"location,omitempty"`
}

// UpdateTicketStatusRequest carries a ticket status transition.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// PostMessageRequest carries one chat message body.
type PostMessageRequest struct {
	Body string `json:"body"`
}

// CreateCompanyRequest describes the company directory payload.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	TrimbleCode string `json:"trimbleCode"`
	Address     string `json:"address,omitempty"`
}
