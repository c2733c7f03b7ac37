package trimble

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/config"
)

// Module exposes the Trimble client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewSOAPClient(p.Config.TrimbleAPIURL, p.Config.TrimbleUsername, p.Config.TrimblePassword, p.Config.RequestTimeout, p.Logger)
}
