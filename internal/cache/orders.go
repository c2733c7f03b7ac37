package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/metrics"
)

// Loader produces a fresh order list for a cache key.
type Loader func(ctx context.Context) ([]model.Order, error)

// OrderCache wraps a Store with stale-while-revalidate semantics for
// normalized repair orders. A fresh hit is served as is; a hit whose remaining
// TTL dropped below the threshold is still served immediately while a single
// detached revalidation refreshes the entry. Revalidation failures are logged
// and never evict.
type OrderCache struct {
	store     Store
	ttl       time.Duration
	threshold time.Duration
	logger    *slog.Logger
	metrics   *metrics.Registry

	mu       sync.Mutex
	inflight map[string]struct{}
	wg       sync.WaitGroup
}

// NewOrderCache constructs the cache layer.
func NewOrderCache(store Store, ttl, threshold time.Duration, logger *slog.Logger, reg *metrics.Registry) *OrderCache {
	return &OrderCache{
		store:     store,
		ttl:       ttl,
		threshold: threshold,
		logger:    logger,
		metrics:   reg,
		inflight:  map[string]struct{}{},
	}
}

// Get returns orders for the key, loading through on a miss. The caller is
// never blocked on background revalidation.
func (c *OrderCache) Get(ctx context.Context, key string, load Loader) ([]model.Order, error) {
	payload, remaining, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var orders []model.Order
		if jsonErr := json.Unmarshal(payload, &orders); jsonErr != nil {
			c.logger.Warn("corrupt cache entry, refetching", slog.String("key", key), slog.String("error", jsonErr.Error()))
			return c.loadAndStore(ctx, key, load)
		}
		c.metrics.CacheHits.Inc()
		if remaining <= c.threshold {
			c.metrics.StaleServed.Inc()
			c.revalidate(key, load)
		}
		return orders, nil

	case err == ErrMiss:
		c.metrics.CacheMisses.Inc()
		return c.loadAndStore(ctx, key, load)

	default:
		// Store unavailable: fail open to a direct fetch so the portal keeps
		// serving; the write-back below is best effort.
		c.logger.Error("cache store unavailable, fetching directly", slog.String("key", key), slog.String("error", err.Error()))
		return c.loadAndStore(ctx, key, load)
	}
}

// Wait blocks until all in-flight revalidations finish. Called on shutdown.
func (c *OrderCache) Wait() {
	c.wg.Wait()
}

func (c *OrderCache) loadAndStore(ctx context.Context, key string, load Loader) ([]model.Order, error) {
	orders, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.put(ctx, key, orders)
	return orders, nil
}

func (c *OrderCache) put(ctx context.Context, key string, orders []model.Order) {
	payload, err := json.Marshal(orders)
	if err != nil {
		c.logger.Error("marshal cache entry failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// revalidate spawns at most one background refresh per key. The task carries
// its own error boundary: a failed refresh is logged and leaves the existing
// entry untouched.
func (c *OrderCache) revalidate(key string, load Loader) {
	c.mu.Lock()
	if _, running := c.inflight[key]; running {
		c.mu.Unlock()
		return
	}
	c.inflight[key] = struct{}{}
	c.mu.Unlock()

	c.metrics.Revalidations.Inc()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			delete(c.inflight, key)
			c.mu.Unlock()
		}()

		// Detached from the request that triggered it.
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		orders, err := load(ctx)
		if err != nil {
			c.metrics.RevalidationFailures.Inc()
			c.logger.Error("background revalidation failed", slog.String("key", key), slog.String("error", err.Error()))
			return
		}
		c.put(ctx, key, orders)
	}()
}
