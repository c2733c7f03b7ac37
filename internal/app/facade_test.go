package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/tntx/fleetport/internal/adapter/trimble"
	"github.com/tntx/fleetport/internal/cache"
	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/metrics"
	pkgAuth "github.com/tntx/fleetport/internal/pkg/auth"
	"github.com/tntx/fleetport/internal/refdata"
	testhelpers "github.com/tntx/fleetport/internal/test"
	"github.com/tntx/fleetport/internal/usecase"
)

type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value, ok := s.entries[key]; ok {
		return value, time.Hour, nil
	}
	return nil, 0, cache.ErrMiss
}

func (s *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		s.entries = make(map[string][]byte)
	}
	s.entries[key] = value
	return nil
}

type facadeFixture struct {
	facade  *PortalFacade
	users   *testhelpers.UserRepositoryStub
	tickets *testhelpers.TicketRepositoryStub
	client  *testhelpers.TrimbleClientStub
}

func newFacade(t *testing.T) *facadeFixture {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{
		ParseFn: func(string) (pkgAuth.Claims, error) {
			return pkgAuth.Claims{UserID: 99, Role: model.RoleDriver}, nil
		},
	}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)

	client := &testhelpers.TrimbleClientStub{}
	reg := metrics.NewRegistry()
	orderCache := cache.NewOrderCache(&memStore{}, time.Hour, time.Minute, logger, reg)
	t.Cleanup(orderCache.Wait)
	normalizer := usecase.NewNormalizer(refdata.Load("", "", logger), "https://example.test")
	orderUC := usecase.NewRepairOrderUseCase(client, normalizer, &testhelpers.CompanyRepositoryStub{}, orderCache, reg, logger)

	tickets := &testhelpers.TicketRepositoryStub{}
	ticketUC := usecase.NewTicketUseCase(tickets)
	chatUC := usecase.NewChatUseCase(tickets, &testhelpers.ChatRepositoryStub{})
	companyUC := usecase.NewCompanyUseCase(&testhelpers.CompanyRepositoryStub{})

	return &facadeFixture{
		facade:  NewPortalFacade(authUC, orderUC, ticketUC, chatUC, companyUC),
		users:   users,
		tickets: tickets,
		client:  client,
	}
}

func TestPortalFacadeAuth(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()

	token, err := f.facade.Register(ctx, "driver1", "pass", model.RoleDriver, nil)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := f.users.GetByLogin(ctx, "driver1"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	if _, err := f.facade.Authenticate(ctx, "driver1", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	claims, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if claims.UserID != 99 {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestPortalFacadeRepairOrdersFiltersVisibility(t *testing.T) {
	f := newFacade(t)
	f.client.Orders = []trimble.RawOrder{
		{OrderID: "1", CustomerNumber: "MELTON"},
		{OrderID: "2", CustomerNumber: "WATKINS"},
	}
	ctx := context.Background()

	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	all, err := f.facade.RepairOrders(ctx, admin, "")
	if err != nil {
		t.Fatalf("repair orders returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see both orders, got %d", len(all))
	}

	companyID := int64(5)
	scopedUser := &model.User{ID: 2, Role: model.RoleCompanyUser, CompanyID: &companyID}
	scoped, err := f.facade.RepairOrders(ctx, scopedUser, "")
	if err != nil {
		t.Fatalf("repair orders returned error: %v", err)
	}
	// no company directory entries, so nothing resolves to the user's company
	if len(scoped) != 0 {
		t.Fatalf("unresolved orders must be hidden from company users, got %d", len(scoped))
	}
}

func TestPortalFacadeRepairOrderHidesForeignOrders(t *testing.T) {
	f := newFacade(t)
	f.client.Orders = []trimble.RawOrder{{OrderID: "1", CustomerNumber: "MELTON"}}
	ctx := context.Background()

	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	if _, err := f.facade.RepairOrder(ctx, admin, "1"); err != nil {
		t.Fatalf("admin lookup returned error: %v", err)
	}

	companyID := int64(5)
	outsider := &model.User{ID: 2, Role: model.RoleDriver, CompanyID: &companyID}
	if _, err := f.facade.RepairOrder(ctx, outsider, "1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("foreign order must read as absent, got %v", err)
	}
}

func TestPortalFacadeTicketsAndChat(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	driver := &model.User{ID: 9, Role: model.RoleDriver}

	ticket, err := f.facade.CreateTicket(ctx, driver, "12345", "flat tire", "I-40")
	if err != nil {
		t.Fatalf("create ticket returned error: %v", err)
	}

	listed, err := f.facade.Tickets(ctx, driver)
	if err != nil || len(listed) != 1 {
		t.Fatalf("tickets listing failed: %v %d", err, len(listed))
	}

	if _, err := f.facade.PostMessage(ctx, driver, ticket.ID, "any update?"); err != nil {
		t.Fatalf("post message returned error: %v", err)
	}
	thread, err := f.facade.TicketMessages(ctx, driver, ticket.ID)
	if err != nil || len(thread) != 1 {
		t.Fatalf("thread listing failed: %v %d", err, len(thread))
	}
}

func TestPortalFacadeCompanies(t *testing.T) {
	f := newFacade(t)
	ctx := context.Background()
	admin := &model.User{ID: 1, Role: model.RoleAdmin}

	if _, err := f.facade.CreateCompany(ctx, admin, "Melton Truck Lines", "MELTON", ""); err != nil {
		t.Fatalf("create company returned error: %v", err)
	}
	companies, err := f.facade.Companies(ctx)
	if err != nil || len(companies) != 1 {
		t.Fatalf("companies listing failed: %v %d", err, len(companies))
	}
}

func TestPortalFacadeWarmOrders(t *testing.T) {
	f := newFacade(t)
	fetches := 0
	f.client.FetchOrdersFn = func(context.Context, trimble.OrderFilter) ([]trimble.RawOrder, error) {
		fetches++
		return nil, nil
	}

	if err := f.facade.WarmOrders(context.Background()); err != nil {
		t.Fatalf("warm returned error: %v", err)
	}
	if fetches != 1 {
		t.Fatalf("expected one upstream fetch, got %d", fetches)
	}
}
