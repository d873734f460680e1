package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Family groups products for catalog purposes. ProductCount is a cached
// aggregate maintained by the family count worker.
type Family struct {
	Code         string
	Name         string
	ProductCount int64
	UpdatedAt    time.Time
}

// Product is a catalog item belonging to at most one family.
type Product struct {
	Reference  string
	FamilyCode string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Variant is a sellable variation of a product. CostPrice is derived by the
// pricing service from known supplier prices.
type Variant struct {
	Reference        string
	ProductReference string
	CostPrice        decimal.Decimal
	UpdatedAt        time.Time
}
