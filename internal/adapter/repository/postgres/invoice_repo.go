package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const sumInvoicesByCustomer = `
SELECT COALESCE(SUM(total), 0)
FROM invoices
WHERE customer_code = $1
`

// SumByCustomer sums invoice totals for a customer.
func (r *InvoiceRepository) SumByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx, sumInvoicesByCustomer, customerCode).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

const sumOutstandingByCustomer = `
SELECT COALESCE(SUM(total), 0)
FROM invoices
WHERE customer_code = $1 AND NOT paid
`

// SumOutstandingByCustomer sums unpaid invoice totals for a customer.
func (r *InvoiceRepository) SumOutstandingByCustomer(ctx context.Context, customerCode string) (decimal.Decimal, error) {
	var total pgtype.Numeric

	err := r.pool.QueryRow(ctx, sumOutstandingByCustomer, customerCode).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}
