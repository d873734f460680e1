package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/rollup/internal/adapter/http/dto"
	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
)

// ReconcileHandler exposes manual reconciliation triggers. Each trigger
// synthesizes the event the matching worker listens for, so a forced run
// takes exactly the path an organic model save would.
type ReconcileHandler struct {
	dispatcher  *usecase.Dispatcher
	subaccounts usecase.SubaccountRepository
	accounts    usecase.AccountRepository
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(
	dispatcher *usecase.Dispatcher,
	subaccounts usecase.SubaccountRepository,
	accounts usecase.AccountRepository,
) *ReconcileHandler {
	return &ReconcileHandler{
		dispatcher:  dispatcher,
		subaccounts: subaccounts,
		accounts:    accounts,
	}
}

// ReconcileSubaccount handles POST /api/v1/subaccounts/{id}/reconcile.
func (h *ReconcileHandler) ReconcileSubaccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.subaccounts.GetByID(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "subaccount lookup failed", err.Error())
		return
	}

	ev := domain.NewEvent(domain.EventLedgerLineSaved, id)
	if err := h.dispatcher.Fire(r.Context(), ev); err != nil {
		writeError(w, http.StatusInternalServerError, "reconciliation failed", err.Error())
		return
	}

	sub, err := h.subaccounts.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "subaccount lookup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SubaccountFromDomain(sub))
}

// ReconcileAccount handles POST /api/v1/accounts/{id}/reconcile.
func (h *ReconcileHandler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.accounts.GetByID(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "account lookup failed", err.Error())
		return
	}

	ev := domain.NewEvent(domain.EventAccountSaved, id)
	if err := h.dispatcher.Fire(r.Context(), ev); err != nil {
		writeError(w, http.StatusInternalServerError, "reconciliation failed", err.Error())
		return
	}

	acc, err := h.accounts.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "account lookup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(acc))
}

// ReconcileCustomer handles POST /api/v1/customers/{code}/reconcile.
func (h *ReconcileHandler) ReconcileCustomer(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	ev := domain.NewEvent(domain.EventInvoiceSaved, "", domain.WithParam("customer", code))
	if err := h.dispatcher.Fire(r.Context(), ev); err != nil {
		writeError(w, http.StatusInternalServerError, "reconciliation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DispatchResponse{
		Status: "dispatched",
		Event:  string(domain.EventInvoiceSaved),
	})
}

// ReconcileFamily handles POST /api/v1/families/{code}/reconcile.
func (h *ReconcileHandler) ReconcileFamily(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	ev := domain.NewEvent(domain.EventProductSaved, "", domain.WithParam("family", code))
	if err := h.dispatcher.Fire(r.Context(), ev); err != nil {
		writeError(w, http.StatusInternalServerError, "reconciliation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DispatchResponse{
		Status: "dispatched",
		Event:  string(domain.EventProductSaved),
	})
}
