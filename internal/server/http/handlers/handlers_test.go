package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/server/http/dto"
	"github.com/tntx/fleetport/internal/server/http/middleware"
	testhelpers "github.com/tntx/fleetport/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// routePattern maps a concrete request path to the parameterized route it is
// served by in router.go, so handlers see the same gin params as in production.
func routePattern(path string) string {
	switch {
	case strings.HasPrefix(path, "/repair-orders/"):
		return "/repair-orders/:orderId"
	case strings.HasPrefix(path, "/tickets/") && strings.HasSuffix(path, "/status"):
		return "/tickets/:ticketId/status"
	case strings.HasPrefix(path, "/tickets/") && strings.HasSuffix(path, "/chat"):
		return "/tickets/:ticketId/chat"
	case strings.HasPrefix(path, "/tickets/"):
		return "/tickets/:ticketId"
	}
	return path
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, routePattern(path), func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(user *model.User) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, user)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	user := &model.User{ID: 42, Role: model.RoleAgent}
	c.Set(middleware.UserContextKey, user)
	if got := CurrentUser(c); got != user {
		t.Fatalf("expected stored user, got %+v", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterPassesRole(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	companyID := int64(3)
	body, _ := json.Marshal(dto.RegisterRequest{Login: login, Password: password, Role: "company_user", CompanyID: &companyID})

	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		RegisterFn: func(ctx context.Context, gotLogin, gotPassword string, gotRole model.Role, gotCompany *int64) (string, error) {
			if gotLogin != login || gotPassword != password {
				t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
			}
			if gotRole != model.RoleCompanyUser {
				t.Fatalf("unexpected role %q", gotRole)
			}
			if gotCompany == nil || *gotCompany != companyID {
				t.Fatalf("unexpected company %+v", gotCompany)
			}
			return "token", nil
		},
	})

	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerRegisterErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", domainErrors.ErrInvalidCredentials, http.StatusBadRequest},
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewAuthHandler(testhelpers.AuthFacadeStub{
				RegisterFn: func(context.Context, string, string, model.Role, *int64) (string, error) {
					return "", tc.err
				},
			})
			body, _ := json.Marshal(dto.RegisterRequest{Login: "user", Password: "pass"})
			resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.Code)
			}
		})
	}

	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed payload, got %d", resp.Code)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Login: "user", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	handler := NewAuthHandler(testhelpers.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		},
	})
	resp = performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	agent := &model.User{ID: 1, Role: model.RoleAgent}
	facade := testhelpers.OrderFacadeStub{
		RepairOrdersFn: func(ctx context.Context, user *model.User, fromDate string) ([]model.Order, error) {
			return []model.Order{{OrderID: "1"}, {OrderID: "2"}}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/repair-orders", NewOrderHandler(facade).List, asUser(agent), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var orders []model.Order
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}

func TestOrderHandlerListQueryParam(t *testing.T) {
	agent := &model.User{ID: 1, Role: model.RoleAgent}
	router := gin.New()
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{
		RepairOrdersFn: func(ctx context.Context, user *model.User, fromDate string) ([]model.Order, error) {
			if fromDate != "2026-08-15" {
				t.Fatalf("fromDate not forwarded: %q", fromDate)
			}
			return nil, nil
		},
	})
	router.GET("/repair-orders", func(c *gin.Context) {
		asUser(agent)(c)
		handler.List(c)
	})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/repair-orders?fromDate=2026-08-15", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestOrderHandlerListUpstreamFailure(t *testing.T) {
	agent := &model.User{ID: 1, Role: model.RoleAgent}
	facade := testhelpers.OrderFacadeStub{
		RepairOrdersFn: func(context.Context, *model.User, string) ([]model.Order, error) {
			return nil, errors.New("soap timeout")
		},
	}
	resp := performRequest(t, http.MethodGet, "/repair-orders", NewOrderHandler(facade).List, asUser(agent), nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload["error"] != "failed to fetch repair orders" {
		t.Fatalf("unexpected error body: %+v", payload)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	agent := &model.User{ID: 1, Role: model.RoleAgent}
	facade := testhelpers.OrderFacadeStub{
		RepairOrderFn: func(ctx context.Context, user *model.User, orderID string) (*model.Order, error) {
			if orderID != "777" {
				t.Fatalf("unexpected order id %q", orderID)
			}
			return &model.Order{OrderID: orderID}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/repair-orders/777", NewOrderHandler(facade).Get, asUser(agent), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	missing := testhelpers.OrderFacadeStub{
		RepairOrderFn: func(context.Context, *model.User, string) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	resp = performRequest(t, http.MethodGet, "/repair-orders/404", NewOrderHandler(missing).Get, asUser(agent), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerRequiresUser(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/repair-orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).List, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", resp.Code)
	}
}

func TestTicketHandlerCreate(t *testing.T) {
	driver := &model.User{ID: 9, Role: model.RoleDriver}
	body, _ := json.Marshal(dto.CreateTicketRequest{UnitNumber: "12345", Complaint: "flat tire", Location: "I-40"})
	handler := NewTicketHandler(testhelpers.TicketFacadeStub{}, testhelpers.ChatFacadeStub{})

	resp := performRequest(t, http.MethodPost, "/tickets", handler.Create, asUser(driver), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/tickets", handler.Create, asUser(driver), []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed payload, got %d", resp.Code)
	}
}

func TestTicketHandlerList(t *testing.T) {
	driver := &model.User{ID: 9, Role: model.RoleDriver}
	handler := NewTicketHandler(testhelpers.TicketFacadeStub{}, testhelpers.ChatFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/tickets", handler.List, asUser(driver), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	empty := NewTicketHandler(testhelpers.TicketFacadeStub{
		TicketsFn: func(context.Context, *model.User) ([]model.Ticket, error) { return nil, nil },
	}, testhelpers.ChatFacadeStub{})
	resp = performRequest(t, http.MethodGet, "/tickets", empty.List, asUser(driver), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for empty list, got %d", resp.Code)
	}
}

func TestTicketHandlerGetErrors(t *testing.T) {
	driver := &model.User{ID: 9, Role: model.RoleDriver}
	forbidden := NewTicketHandler(testhelpers.TicketFacadeStub{
		TicketFn: func(context.Context, *model.User, int64) (*model.Ticket, error) {
			return nil, domainErrors.ErrForbidden
		},
	}, testhelpers.ChatFacadeStub{})

	resp := performRequest(t, http.MethodGet, "/tickets/1", forbidden.Get, asUser(driver), nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	handler := NewTicketHandler(testhelpers.TicketFacadeStub{}, testhelpers.ChatFacadeStub{})
	resp = performRequest(t, http.MethodGet, "/tickets/abc", handler.Get, asUser(driver), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.Code)
	}
}

func TestTicketHandlerUpdateStatus(t *testing.T) {
	agent := &model.User{ID: 5, Role: model.RoleAgent}
	body, _ := json.Marshal(dto.UpdateTicketStatusRequest{Status: "IN_PROGRESS"})

	handler := NewTicketHandler(testhelpers.TicketFacadeStub{
		UpdateTicketStatusFn: func(ctx context.Context, user *model.User, id int64, status model.TicketStatus) (*model.Ticket, error) {
			if status != model.TicketStatusInProgress {
				t.Fatalf("unexpected status %q", status)
			}
			return &model.Ticket{ID: id, Status: status}, nil
		},
	}, testhelpers.ChatFacadeStub{})
	resp := performRequest(t, http.MethodPatch, "/tickets/1/status", handler.UpdateStatus, asUser(agent), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	denied := NewTicketHandler(testhelpers.TicketFacadeStub{
		UpdateTicketStatusFn: func(context.Context, *model.User, int64, model.TicketStatus) (*model.Ticket, error) {
			return nil, domainErrors.ErrForbidden
		},
	}, testhelpers.ChatFacadeStub{})
	resp = performRequest(t, http.MethodPatch, "/tickets/1/status", denied.UpdateStatus, asUser(agent), body, jsonHeaders)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestTicketHandlerChat(t *testing.T) {
	driver := &model.User{ID: 9, Role: model.RoleDriver}
	handler := NewTicketHandler(testhelpers.TicketFacadeStub{}, testhelpers.ChatFacadeStub{})

	body, _ := json.Marshal(dto.PostMessageRequest{Body: "any update?"})
	resp := performRequest(t, http.MethodPost, "/tickets/1/chat", handler.PostMessage, asUser(driver), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/tickets/1/chat", handler.Messages, asUser(driver), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	missing := NewTicketHandler(testhelpers.TicketFacadeStub{}, testhelpers.ChatFacadeStub{
		TicketMessagesFn: func(context.Context, *model.User, int64) ([]model.ChatMessage, error) {
			return nil, domainErrors.ErrNotFound
		},
	})
	resp = performRequest(t, http.MethodGet, "/tickets/404/chat", missing.Messages, asUser(driver), nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCompanyHandler(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	handler := NewCompanyHandler(testhelpers.CompanyFacadeStub{})

	body, _ := json.Marshal(dto.CreateCompanyRequest{Name: "Melton Truck Lines", TrimbleCode: "MELTON"})
	resp := performRequest(t, http.MethodPost, "/companies", handler.Create, asUser(admin), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/companies", handler.List, asUser(admin), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	denied := NewCompanyHandler(testhelpers.CompanyFacadeStub{
		CreateCompanyFn: func(context.Context, *model.User, string, string, string) (*model.Company, error) {
			return nil, domainErrors.ErrForbidden
		},
	})
	resp = performRequest(t, http.MethodPost, "/companies", denied.Create, asUser(admin), body, jsonHeaders)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	dup := NewCompanyHandler(testhelpers.CompanyFacadeStub{
		CreateCompanyFn: func(context.Context, *model.User, string, string, string) (*model.Company, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	})
	resp = performRequest(t, http.MethodPost, "/companies", dup.Create, asUser(admin), body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}
