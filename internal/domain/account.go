package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is an internal node of the chart of accounts. Its debit/credit
// totals are cached sums over its direct children (accounts and
// subaccounts), maintained by the account roll-up worker.
type Account struct {
	ID        string
	Code      string
	ParentID  string // empty for a root account
	Name      string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subaccount is a leaf of the chart of accounts. Its totals are cached sums
// over its ledger lines, maintained by the subaccount roll-up worker.
type Subaccount struct {
	ID        string
	Code      string
	AccountID string
	Name      string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithinTolerance reports whether two amounts differ by no more than eps.
// Recomputed aggregates inside the tolerance are treated as unchanged so
// rounding noise does not cause write churn.
func WithinTolerance(a, b, eps decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(eps)
}
