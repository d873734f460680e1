package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const ledgerConsistencyTotals = `
SELECT
	(SELECT COALESCE(SUM(debit - credit), 0) FROM ledger_lines),
	(SELECT COALESCE(SUM(balance), 0) FROM subaccounts)
`

// CheckConsistency returns the sum of posted line amounts and the sum of
// cached subaccount balances.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	var lineTotal, cachedTotal pgtype.Numeric

	err := r.pool.QueryRow(ctx, ledgerConsistencyTotals).Scan(&lineTotal, &cachedTotal)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(lineTotal), numericToDecimal(cachedTotal), nil
}
