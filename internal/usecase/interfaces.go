package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// SubaccountRepository defines data access for subaccounts.
type SubaccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Subaccount, error)
	UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error
	// TotalsByAccount sums cached debit/credit over the subaccounts that
	// hang directly off the given account.
	TotalsByAccount(ctx context.Context, accountID string) (debit, credit decimal.Decimal, err error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error
	// ChildTotals sums cached debit/credit over the direct child accounts.
	ChildTotals(ctx context.Context, parentID string) (debit, credit decimal.Decimal, err error)
}

// LedgerLineRepository defines data access for ledger lines.
type LedgerLineRepository interface {
	// ListBySubaccount returns one page of the subaccount's lines in
	// canonical posting order: (date, entry number, line id) ascending.
	ListBySubaccount(ctx context.Context, subaccountID string, offset, limit int) ([]*domain.LedgerLine, error)
	// UpdateBalance patches a line's cached running balance. Mode tells the
	// repository whether user-edit validation applies.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, mode domain.SaveMode) error
}

// LedgerRepository defines ledger-wide operations.
type LedgerRepository interface {
	// CheckConsistency returns the sum of posted line amounts and the sum of
	// cached subaccount balances. The two agree on a reconciled ledger.
	CheckConsistency(ctx context.Context) (lineTotal, cachedTotal decimal.Decimal, err error)
}

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
	UpdateTotals(ctx context.Context, code string, invoiced, outstanding decimal.Decimal, updatedAt time.Time) error
}

// InvoiceRepository defines aggregate queries over invoices.
type InvoiceRepository interface {
	SumByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error)
	SumOutstandingByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error)
}

// FamilyRepository defines data access for product families.
type FamilyRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Family, error)
	UpdateProductCount(ctx context.Context, code string, count int64, updatedAt time.Time) error
}

// ProductRepository defines aggregate queries over products.
type ProductRepository interface {
	CountByFamily(ctx context.Context, familyCode string) (int64, error)
}

// VariantRepository defines data access for product variants.
type VariantRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Variant, error)
	UpdateCostPrice(ctx context.Context, reference string, cost decimal.Decimal, updatedAt time.Time) error
}

// PurchaseDocumentRepository defines data access for purchase documents.
type PurchaseDocumentRepository interface {
	// GetByCode loads the document together with its lines.
	GetByCode(ctx context.Context, code string) (*domain.PurchaseDocument, error)
}

// SupplierProductRepository defines data access for supplier price records.
type SupplierProductRepository interface {
	GetBySupplierReference(ctx context.Context, supplierCode, reference string) (*domain.SupplierProduct, error)
	Save(ctx context.Context, sp *domain.SupplierProduct) error
	// LatestByReference returns the most recently updated price record for a
	// reference across all suppliers.
	LatestByReference(ctx context.Context, reference string) (*domain.SupplierProduct, error)
}

// SettingsRepository looks up configuration values stored per section/key.
type SettingsRepository interface {
	Get(ctx context.Context, section, key string) (string, error)
}

// Rounder rounds amounts to the configured monetary precision before
// persistence.
type Rounder interface {
	Round(d decimal.Decimal) decimal.Decimal
}

// PricingService computes derived prices for the cost price worker.
type PricingService interface {
	UpdateCostPrice(ctx context.Context, variant *domain.Variant) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
