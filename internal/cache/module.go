package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/tntx/fleetport/internal/config"
	"github.com/tntx/fleetport/internal/metrics"
)

// Module wires the Redis store and order cache into the fx graph.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(newOrderCache),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) *RedisStore {
	return NewRedisStore(p.Config.RedisAddress)
}

type cacheParams struct {
	fx.In

	Store   *RedisStore
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry
}

func newOrderCache(p cacheParams) *OrderCache {
	return NewOrderCache(p.Store, p.Config.CacheTTL, p.Config.CacheStaleThreshold, p.Logger, p.Metrics)
}

func registerLifecycle(lc fx.Lifecycle, store *RedisStore, orderCache *OrderCache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			orderCache.Wait()
			return store.Close()
		},
	})
}
