package usecase

import (
	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/config"
	"github.com/tntx/fleetport/internal/refdata"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newNormalizer,
	NewAuthUseCase,
	NewRepairOrderUseCase,
	NewTicketUseCase,
	NewChatUseCase,
	NewCompanyUseCase,
)

func newNormalizer(lookup *refdata.Lookup, cfg *config.Config) *Normalizer {
	return NewNormalizer(lookup, cfg.RoadCallLinkBase)
}
