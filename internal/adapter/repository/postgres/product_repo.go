package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const countProductsByFamily = `
SELECT COUNT(*)
FROM products
WHERE family_code = $1
`

// CountByFamily counts the products assigned to a family.
func (r *ProductRepository) CountByFamily(ctx context.Context, familyCode string) (int64, error) {
	var count int64

	err := r.pool.QueryRow(ctx, countProductsByFamily, familyCode).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
