package router

import (
	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/app"
	"github.com/tntx/fleetport/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(facade *app.PortalFacade) handlers.PortalFacade { return facade }),
	fx.Provide(Setup),
)
