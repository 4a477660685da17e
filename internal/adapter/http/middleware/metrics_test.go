package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{
			name:       "normalizes customer path",
			method:     http.MethodGet,
			path:       "/api/v1/customers/ABC123",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodPost,
			path:       "/health",
			statusCode: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			normalized := normalizePath(tc.path)
			counter := httpRequestsTotal.WithLabelValues(tc.method, normalized, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "customer path without suffix",
			input:    "/api/v1/customers/ABC123",
			expected: "/api/v1/customers/:id",
		},
		{
			name:     "nested debt path",
			input:    "/api/v1/customers/ABC123/debts/XYZ789/payments",
			expected: "/api/v1/customers/:id/debts/:id/payments",
		},
		{
			name:     "installment toggle path",
			input:    "/api/v1/customers/ABC/debts/DEF/installments/GHI/toggle",
			expected: "/api/v1/customers/:id/debts/:id/installments/:id/toggle",
		},
		{
			name:     "list path untouched",
			input:    "/api/v1/customers",
			expected: "/api/v1/customers",
		},
		{
			name:     "non-matching path",
			input:    "/api/v1/reports/summary",
			expected: "/api/v1/reports/summary",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
