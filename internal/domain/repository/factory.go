package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Companies() CompanyRepository
	Tickets() TicketRepository
	Chats() ChatRepository
}
