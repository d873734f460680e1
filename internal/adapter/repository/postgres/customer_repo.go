package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool, retrier *Retrier) *CustomerRepository {
	return &CustomerRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getCustomerByCode = `
SELECT code, name, total_invoiced, total_outstanding, created_at, updated_at
FROM customers
WHERE code = $1
`

// GetByCode retrieves a customer by code.
func (r *CustomerRepository) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	var (
		customer              domain.Customer
		invoiced, outstanding pgtype.Numeric
		createdAt, updatedAt  pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getCustomerByCode, code).Scan(
		&customer.Code, &customer.Name,
		&invoiced, &outstanding, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	customer.TotalInvoiced = numericToDecimal(invoiced)
	customer.TotalOutstanding = numericToDecimal(outstanding)
	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time

	return &customer, nil
}

const updateCustomerTotals = `
UPDATE customers
SET total_invoiced = $2, total_outstanding = $3, updated_at = $4
WHERE code = $1
`

// UpdateTotals writes the cached invoicing totals of a customer.
func (r *CustomerRepository) UpdateTotals(ctx context.Context, code string, invoiced, outstanding decimal.Decimal, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateCustomerTotals, code,
			decimalToNumeric(invoiced),
			decimalToNumeric(outstanding),
			timeToPgTimestamptz(updatedAt),
		)

		return err
	})
}
