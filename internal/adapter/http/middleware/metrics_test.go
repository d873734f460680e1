package middleware

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/subaccounts/4300001/reconcile", "/api/v1/subaccounts/:key/reconcile"},
		{"/api/v1/accounts/430/reconcile", "/api/v1/accounts/:key/reconcile"},
		{"/api/v1/customers/C-42/reconcile", "/api/v1/customers/:key/reconcile"},
		{"/api/v1/families/FAM-1/reconcile", "/api/v1/families/:key/reconcile"},
		{"/api/v1/subaccounts/4300001", "/api/v1/subaccounts/:key"},
		{"/api/v1/ledger/consistency", "/api/v1/ledger/consistency"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
