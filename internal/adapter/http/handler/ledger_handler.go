package handler

import (
	"errors"
	"net/http"

	"github.com/iho/rollup/internal/adapter/http/dto"
	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
)

// LedgerHandler handles ledger-wide requests.
type LedgerHandler struct {
	ledger *usecase.LedgerUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// CheckConsistency handles GET /api/v1/ledger/consistency.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.ledger.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInconsistentLedger) {
			writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{Consistent: false})
			return
		}

		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: consistent})
}
