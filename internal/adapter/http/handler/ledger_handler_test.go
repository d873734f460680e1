package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/adapter/http/dto"
	"github.com/iho/rollup/internal/usecase"
	"github.com/iho/rollup/internal/usecase/mocks"
)

func TestLedgerHandler_ConsistentLedger(t *testing.T) {
	repo := &mocks.MockLedgerRepository{
		LineTotal:   decimal.RequireFromString("1250.00"),
		CachedTotal: decimal.RequireFromString("1250.00"),
	}
	h := NewLedgerHandler(usecase.NewLedgerUseCase(repo, usecase.ReconcileConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
	rec := httptest.NewRecorder()

	h.CheckConsistency(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ConsistencyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Consistent {
		t.Fatalf("expected consistent ledger")
	}
}

func TestLedgerHandler_InconsistentLedger(t *testing.T) {
	repo := &mocks.MockLedgerRepository{
		LineTotal:   decimal.RequireFromString("1250.00"),
		CachedTotal: decimal.RequireFromString("1300.00"),
	}
	h := NewLedgerHandler(usecase.NewLedgerUseCase(repo, usecase.ReconcileConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
	rec := httptest.NewRecorder()

	h.CheckConsistency(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLedgerHandler_RepositoryError(t *testing.T) {
	repo := &mocks.MockLedgerRepository{Err: errors.New("connection reset")}
	h := NewLedgerHandler(usecase.NewLedgerUseCase(repo, usecase.ReconcileConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/ledger/consistency", nil)
	rec := httptest.NewRecorder()

	h.CheckConsistency(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
