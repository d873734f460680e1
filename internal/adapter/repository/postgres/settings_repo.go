package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/rollup/internal/domain"
)

// SettingsRepository implements usecase.SettingsRepository over the
// settings table.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const getSetting = `
SELECT value
FROM settings
WHERE section = $1 AND key = $2
`

// Get looks up one configuration value by section and key.
func (r *SettingsRepository) Get(ctx context.Context, section, key string) (string, error) {
	var value string

	err := r.pool.QueryRow(ctx, getSetting, section, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrSettingNotFound
		}

		return "", err
	}

	return value, nil
}
