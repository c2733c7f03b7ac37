package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PortalFacade exposes the subset of application functionality required by the warmer.
type PortalFacade interface {
	WarmOrders(ctx context.Context) error
}

// CacheWarmer periodically refreshes the repair-order cache so interactive
// requests land on warm data instead of paying the upstream SOAP round trip.
type CacheWarmer struct {
	facade   PortalFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCacheWarmer constructs the background cache warmer.
func NewCacheWarmer(facade PortalFacade, interval time.Duration, logger *slog.Logger) *CacheWarmer {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheWarmer{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background warming. The first pass runs immediately.
func (w *CacheWarmer) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.run(runCtx)
}

// Stop waits for the warmer to finish.
func (w *CacheWarmer) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *CacheWarmer) run(ctx context.Context) {
	defer w.wg.Done()

	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) {
	if err := w.facade.WarmOrders(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("cache warm pass failed", slog.String("error", err.Error()))
	}
}
