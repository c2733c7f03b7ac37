package refdata

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/config"
)

// Module wires reference data loading into the fx graph.
var Module = fx.Provide(newLookup)

type lookupParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newLookup(p lookupParams) *Lookup {
	return Load(p.Config.VendorDataPath, p.Config.CustomerDataPath, p.Logger)
}
