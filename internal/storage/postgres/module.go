package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/config"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.CompanyRepository { return s.Companies() },
		func(s *Storage) repository.TicketRepository { return s.Tickets() },
		func(s *Storage) repository.ChatRepository { return s.Chats() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
