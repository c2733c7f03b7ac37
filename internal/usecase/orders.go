package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tntx/fleetport/internal/adapter/trimble"
	"github.com/tntx/fleetport/internal/cache"
	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
	"github.com/tntx/fleetport/internal/metrics"
)

// OrderQuery captures the request parameters that shape a repair-order fetch.
// It doubles as the cache key.
type OrderQuery struct {
	FromDate string
}

// CacheKey returns the stable cache key for this query.
func (q OrderQuery) CacheKey() string {
	if q.FromDate == "" {
		return "repair-orders:all"
	}
	return "repair-orders:from:" + q.FromDate
}

// RepairOrderUseCase aggregates Trimble repair orders: upstream fetch,
// normalization, company resolution, and the stale-while-revalidate cache.
type RepairOrderUseCase struct {
	client     trimble.Client
	normalizer *Normalizer
	companies  repository.CompanyRepository
	cache      *cache.OrderCache
	metrics    *metrics.Registry
	logger     *slog.Logger
}

// NewRepairOrderUseCase constructs RepairOrderUseCase.
func NewRepairOrderUseCase(client trimble.Client, normalizer *Normalizer, companies repository.CompanyRepository, orderCache *cache.OrderCache, reg *metrics.Registry, logger *slog.Logger) *RepairOrderUseCase {
	return &RepairOrderUseCase{
		client:     client,
		normalizer: normalizer,
		companies:  companies,
		cache:      orderCache,
		metrics:    reg,
		logger:     logger,
	}
}

// List returns the normalized order set for the query, served through the cache.
func (u *RepairOrderUseCase) List(ctx context.Context, query OrderQuery) ([]model.Order, error) {
	return u.cache.Get(ctx, query.CacheKey(), func(ctx context.Context) ([]model.Order, error) {
		return u.fetchFresh(ctx, query)
	})
}

// GetByID finds one order in the cached set and attaches every other order
// sharing its road call as RepOrders. Returns ErrNotFound when absent.
func (u *RepairOrderUseCase) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	orders, err := u.List(ctx, OrderQuery{})
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		found := orders[i]
		if found.RoadCallID != nil {
			for _, other := range orders {
				if other.OrderID == found.OrderID {
					continue
				}
				if other.RoadCallID != nil && *other.RoadCallID == *found.RoadCallID {
					found.RepOrders = append(found.RepOrders, other)
				}
			}
		}
		return &found, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Warm refreshes the default query so interactive requests hit a warm cache.
func (u *RepairOrderUseCase) Warm(ctx context.Context) error {
	_, err := u.List(ctx, OrderQuery{})
	return err
}

// fetchFresh performs one full upstream pass: both SOAP calls, company
// directory resolution, then normalization and filtering.
func (u *RepairOrderUseCase) fetchFresh(ctx context.Context, query OrderQuery) ([]model.Order, error) {
	start := time.Now()
	raw, err := u.client.FetchOrders(ctx, trimble.OrderFilter{OrderType: "6", Status: "OPEN"})
	if err != nil {
		return nil, err
	}
	units, err := u.client.FetchUnits(ctx, trimble.UnitFilter{Status: "ACTIVE"})
	if err != nil {
		return nil, err
	}
	u.metrics.UpstreamLatencySec.Observe(time.Since(start).Seconds())

	directory := u.companyDirectory(ctx)
	return u.normalizer.NormalizeBatch(raw, units, directory, query.FromDate), nil
}

// companyDirectory maps upper-cased allow-listed customer keys to company ids.
// A directory failure degrades to null company fields rather than aborting the
// pass; orders remain servable.
func (u *RepairOrderUseCase) companyDirectory(ctx context.Context) map[string]int64 {
	companies, err := u.companies.ListByTrimbleCodes(ctx, allowedCustomerKeys)
	if err != nil {
		u.logger.Error("company directory unavailable", slog.String("error", err.Error()))
		return nil
	}
	directory := make(map[string]int64, len(companies))
	for _, c := range companies {
		directory[strings.ToUpper(c.TrimbleCode)] = c.ID
	}
	return directory
}

// OrderVisibleTo returns the role-based visibility predicate for a user.
// Admins and agents see everything; company users and drivers are scoped to
// orders resolved to their own company.
func OrderVisibleTo(user *model.User) func(model.Order) bool {
	switch user.Role {
	case model.RoleAdmin, model.RoleAgent:
		return func(model.Order) bool { return true }
	default:
		return func(o model.Order) bool {
			return o.CompanyID != nil && user.CompanyID != nil && *o.CompanyID == *user.CompanyID
		}
	}
}
