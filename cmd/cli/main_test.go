package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withTestServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	origURL, origTimeout := baseURL, timeout
	baseURL = srv.URL
	timeout = 5 * time.Second
	t.Cleanup(func() {
		baseURL = origURL
		timeout = origTimeout
	})
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected short unchanged, got %q", got)
	}

	if got := truncate("longerstring", 6); got != "lon..." {
		t.Fatalf("expected lon..., got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestSummaryCmd(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/reports/summary" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cash_remaining":"200","total_value":"10200"}`))
	})

	out := captureOutput(t, func() {
		if err := summaryCmd().Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, `"total_value": "10200"`) {
		t.Fatalf("expected summary output, got %q", out)
	}
}

func TestDebtPayCmdSendsPayment(t *testing.T) {
	var gotPath, gotBody string
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"d-1"}`))
	})

	cmd := debtPayCmd()
	cmd.SetArgs([]string{"c-1", "d-1", "--amount", "150"})

	_ = captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if gotPath != "/api/v1/customers/c-1/debts/d-1/payments" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if !strings.Contains(gotBody, `"amount":"150"`) {
		t.Fatalf("unexpected body %s", gotBody)
	}
}

func TestDoRequestErrorStatus(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"customer not found"}`))
	})

	_, err := doRequest(http.MethodGet, "/api/v1/customers/missing/", nil)
	if err == nil || !strings.Contains(err.Error(), "status 404") {
		t.Fatalf("expected status error, got %v", err)
	}
}
