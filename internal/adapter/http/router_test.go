package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/moharam/debtbook/internal/adapter/http/handler"
)

func newRouterConfig() RouterConfig {
	return RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(nil),
		DebtHandler:      handler.NewDebtHandler(nil),
		ReportHandler:    handler.NewReportHandler(nil),
		GoldPriceHandler: handler.NewGoldPriceHandler(nil),
		HealthHandler:    handler.NewHealthHandler(nil, nil),
	}
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRouter, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Router")
	}

	routes := make(map[string]bool)
	walkFn := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes[method+" "+route] = true
		return nil
	}
	if err := chi.Walk(chiRouter, walkFn); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"POST /api/v1/customers/",
		"GET /api/v1/customers/",
		"GET /api/v1/customers/{id}/",
		"PUT /api/v1/customers/{id}/",
		"POST /api/v1/customers/{id}/archive",
		"GET /api/v1/customers/{id}/statement",
		"GET /api/v1/customers/{id}/statement.csv",
		"POST /api/v1/customers/{id}/debts/",
		"GET /api/v1/customers/{id}/debts/{debtID}/",
		"POST /api/v1/customers/{id}/debts/{debtID}/payments",
		"POST /api/v1/customers/{id}/debts/{debtID}/increases",
		"POST /api/v1/customers/{id}/debts/{debtID}/installments/{installmentID}/toggle",
		"GET /api/v1/reports/summary",
		"GET /api/v1/reports/overdue",
		"GET /api/v1/goldprice",
	}

	for _, route := range expected {
		if !routes[route] {
			t.Errorf("expected route %q to be registered", route)
		}
	}
}
