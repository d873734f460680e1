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

// SubaccountRepository implements usecase.SubaccountRepository.
type SubaccountRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSubaccountRepository creates a new SubaccountRepository.
func NewSubaccountRepository(pool *pgxpool.Pool, retrier *Retrier) *SubaccountRepository {
	return &SubaccountRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getSubaccountByID = `
SELECT id, code, account_id, name, debit, credit, balance, created_at, updated_at
FROM subaccounts
WHERE id = $1
`

// GetByID retrieves a subaccount by ID.
func (r *SubaccountRepository) GetByID(ctx context.Context, id string) (*domain.Subaccount, error) {
	var (
		sub                  domain.Subaccount
		debit, credit        pgtype.Numeric
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getSubaccountByID, id).Scan(
		&sub.ID, &sub.Code, &sub.AccountID, &sub.Name,
		&debit, &credit, &balance, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubaccountNotFound
		}

		return nil, err
	}

	sub.Debit = numericToDecimal(debit)
	sub.Credit = numericToDecimal(credit)
	sub.Balance = numericToDecimal(balance)
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}

const updateSubaccountTotals = `
UPDATE subaccounts
SET debit = $2, credit = $3, balance = $4, updated_at = $5
WHERE id = $1
`

// UpdateTotals writes the cached debit/credit/balance of a subaccount.
func (r *SubaccountRepository) UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateSubaccountTotals, id,
			decimalToNumeric(debit),
			decimalToNumeric(credit),
			decimalToNumeric(balance),
			timeToPgTimestamptz(updatedAt),
		)

		return err
	})
}

const totalsByAccount = `
SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
FROM subaccounts
WHERE account_id = $1
`

// TotalsByAccount sums cached debit/credit over an account's direct
// subaccounts.
func (r *SubaccountRepository) TotalsByAccount(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	var debit, credit pgtype.Numeric

	err := r.pool.QueryRow(ctx, totalsByAccount, accountID).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debit), numericToDecimal(credit), nil
}
