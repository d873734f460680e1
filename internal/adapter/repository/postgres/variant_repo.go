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

// VariantRepository implements usecase.VariantRepository.
type VariantRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewVariantRepository creates a new VariantRepository.
func NewVariantRepository(pool *pgxpool.Pool, retrier *Retrier) *VariantRepository {
	return &VariantRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getVariantByReference = `
SELECT reference, product_reference, cost_price, updated_at
FROM variants
WHERE reference = $1
`

// GetByReference retrieves a variant by reference.
func (r *VariantRepository) GetByReference(ctx context.Context, reference string) (*domain.Variant, error) {
	var (
		variant   domain.Variant
		cost      pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getVariantByReference, reference).Scan(
		&variant.Reference, &variant.ProductReference, &cost, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVariantNotFound
		}

		return nil, err
	}

	variant.CostPrice = numericToDecimal(cost)
	variant.UpdatedAt = updatedAt.Time

	return &variant, nil
}

const updateVariantCostPrice = `
UPDATE variants
SET cost_price = $2, updated_at = $3
WHERE reference = $1
`

// UpdateCostPrice writes the derived cost price of a variant.
func (r *VariantRepository) UpdateCostPrice(ctx context.Context, reference string, cost decimal.Decimal, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateVariantCostPrice, reference,
			decimalToNumeric(cost),
			timeToPgTimestamptz(updatedAt),
		)

		return err
	})
}
