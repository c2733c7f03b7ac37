package di

import (
	"github.com/tntx/fleetport/internal/adapter/trimble"
	"github.com/tntx/fleetport/internal/app"
	"github.com/tntx/fleetport/internal/cache"
	"github.com/tntx/fleetport/internal/config"
	"github.com/tntx/fleetport/internal/logger"
	"github.com/tntx/fleetport/internal/metrics"
	"github.com/tntx/fleetport/internal/pkg/auth"
	"github.com/tntx/fleetport/internal/refdata"
	"github.com/tntx/fleetport/internal/server/http/router"
	"github.com/tntx/fleetport/internal/storage/postgres"
	"github.com/tntx/fleetport/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		refdata.Module,
		trimble.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
