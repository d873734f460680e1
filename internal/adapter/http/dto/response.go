package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DispatchResponse acknowledges a dispatched event.
type DispatchResponse struct {
	Status string `json:"status"`
	Event  string `json:"event"`
}

// SubaccountResponse represents a subaccount in API responses.
type SubaccountResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	AccountID string          `json:"account_id"`
	Name      string          `json:"name"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SubaccountFromDomain converts a domain subaccount to a response.
func SubaccountFromDomain(s *domain.Subaccount) *SubaccountResponse {
	return &SubaccountResponse{
		ID:        s.ID,
		Code:      s.Code,
		AccountID: s.AccountID,
		Name:      s.Name,
		Debit:     s.Debit,
		Credit:    s.Credit,
		Balance:   s.Balance,
		UpdatedAt: s.UpdatedAt,
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	ParentID  string          `json:"parent_id,omitempty"`
	Name      string          `json:"name"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		ParentID:  a.ParentID,
		Name:      a.Name,
		Debit:     a.Debit,
		Credit:    a.Credit,
		Balance:   a.Balance,
		UpdatedAt: a.UpdatedAt,
	}
}

// ConsistencyResponse represents the result of a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool `json:"consistent"`
}
