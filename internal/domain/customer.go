package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer carries cached invoicing totals recomputed by the customer
// totals worker whenever one of its invoices is saved or deleted.
type Customer struct {
	Code             string
	Name             string
	TotalInvoiced    decimal.Decimal
	TotalOutstanding decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Invoice is a sales document. Only the fields the reconciliation engine
// aggregates over are modelled here.
type Invoice struct {
	Code         string
	CustomerCode string
	Total        decimal.Decimal
	Paid         bool
	Date         time.Time
}
