package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReconcilePath(t *testing.T) {
	tests := []struct {
		entity string
		key    string
		want   string
	}{
		{"subaccount", "4300001", "/api/v1/subaccounts/4300001/reconcile"},
		{"account", "430", "/api/v1/accounts/430/reconcile"},
		{"customer", "C-42", "/api/v1/customers/C-42/reconcile"},
		{"family", "FAM-1", "/api/v1/families/FAM-1/reconcile"},
	}

	for _, tt := range tests {
		if got := reconcilePath(tt.entity, tt.key); got != tt.want {
			t.Fatalf("reconcilePath(%q, %q) = %q, want %q", tt.entity, tt.key, got, tt.want)
		}
	}
}

func TestCheckConsistencyAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/ledger/consistency" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"consistent":true}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	var out bytes.Buffer
	if err := checkConsistency(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "PASSED") {
		t.Fatalf("expected PASSED in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), `"consistent": true`) {
		t.Fatalf("expected pretty-printed body, got %q", out.String())
	}
}

func TestReconcileReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	origURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = origURL }()

	var out bytes.Buffer
	if err := reconcile(&out, "subaccount", "missing"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
