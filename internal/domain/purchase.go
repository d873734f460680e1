package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseDocument is a supplier-facing document (delivery note, purchase
// invoice). Lines are loaded together with the document; the engine never
// mutates them.
type PurchaseDocument struct {
	Code         string
	SupplierCode string
	Date         time.Time
	Lines        []PurchaseLine
}

// PurchaseLine is one row of a purchase document.
type PurchaseLine struct {
	ID        string
	Reference string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// SupplierProduct records the last known price a supplier charged for a
// product reference. Updated by the supplier price worker with
// last-write-wins-by-recency semantics.
type SupplierProduct struct {
	ID           string
	SupplierCode string
	Reference    string
	Price        decimal.Decimal
	UpdatedAt    time.Time
}
