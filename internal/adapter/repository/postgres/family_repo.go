package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/rollup/internal/domain"
)

// FamilyRepository implements usecase.FamilyRepository.
type FamilyRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewFamilyRepository creates a new FamilyRepository.
func NewFamilyRepository(pool *pgxpool.Pool, retrier *Retrier) *FamilyRepository {
	return &FamilyRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getFamilyByCode = `
SELECT code, name, product_count, updated_at
FROM families
WHERE code = $1
`

// GetByCode retrieves a family by code.
func (r *FamilyRepository) GetByCode(ctx context.Context, code string) (*domain.Family, error) {
	var (
		family    domain.Family
		updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getFamilyByCode, code).Scan(
		&family.Code, &family.Name, &family.ProductCount, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFamilyNotFound
		}

		return nil, err
	}

	family.UpdatedAt = updatedAt.Time

	return &family, nil
}

const updateFamilyProductCount = `
UPDATE families
SET product_count = $2, updated_at = $3
WHERE code = $1
`

// UpdateProductCount writes the cached product count of a family.
func (r *FamilyRepository) UpdateProductCount(ctx context.Context, code string, count int64, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateFamilyProductCount, code, count, timeToPgTimestamptz(updatedAt))

		return err
	})
}
