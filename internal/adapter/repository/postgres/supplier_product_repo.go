package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/rollup/internal/domain"
)

// SupplierProductRepository implements usecase.SupplierProductRepository.
type SupplierProductRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSupplierProductRepository creates a new SupplierProductRepository.
func NewSupplierProductRepository(pool *pgxpool.Pool, retrier *Retrier) *SupplierProductRepository {
	return &SupplierProductRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getSupplierProduct = `
SELECT id, supplier_code, reference, price, updated_at
FROM supplier_products
WHERE supplier_code = $1 AND reference = $2
`

// GetBySupplierReference retrieves the price record one supplier holds for a
// reference.
func (r *SupplierProductRepository) GetBySupplierReference(ctx context.Context, supplierCode, reference string) (*domain.SupplierProduct, error) {
	return r.scanOne(r.pool.QueryRow(ctx, getSupplierProduct, supplierCode, reference))
}

const upsertSupplierProduct = `
INSERT INTO supplier_products (id, supplier_code, reference, price, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (supplier_code, reference)
DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at
`

// Save upserts a supplier price record keyed by (supplier, reference).
func (r *SupplierProductRepository) Save(ctx context.Context, sp *domain.SupplierProduct) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, upsertSupplierProduct,
			sp.ID, sp.SupplierCode, sp.Reference,
			decimalToNumeric(sp.Price),
			timeToPgTimestamptz(sp.UpdatedAt),
		)

		return err
	})
}

const latestSupplierProductByReference = `
SELECT id, supplier_code, reference, price, updated_at
FROM supplier_products
WHERE reference = $1
ORDER BY updated_at DESC
LIMIT 1
`

// LatestByReference returns the most recently updated price record for a
// reference across all suppliers.
func (r *SupplierProductRepository) LatestByReference(ctx context.Context, reference string) (*domain.SupplierProduct, error) {
	return r.scanOne(r.pool.QueryRow(ctx, latestSupplierProductByReference, reference))
}

func (r *SupplierProductRepository) scanOne(row pgx.Row) (*domain.SupplierProduct, error) {
	var (
		sp        domain.SupplierProduct
		price     pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&sp.ID, &sp.SupplierCode, &sp.Reference, &price, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSupplierProductNotFound
		}

		return nil, err
	}

	sp.Price = numericToDecimal(price)
	sp.UpdatedAt = updatedAt.Time

	return &sp, nil
}
