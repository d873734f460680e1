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

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool, retrier *Retrier) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const getAccountByID = `
SELECT id, code, COALESCE(parent_id, ''), name, debit, credit, balance, created_at, updated_at
FROM accounts
WHERE id = $1
`

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var (
		acc                  domain.Account
		debit, credit        pgtype.Numeric
		balance              pgtype.Numeric
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getAccountByID, id).Scan(
		&acc.ID, &acc.Code, &acc.ParentID, &acc.Name,
		&debit, &credit, &balance, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	acc.Debit = numericToDecimal(debit)
	acc.Credit = numericToDecimal(credit)
	acc.Balance = numericToDecimal(balance)
	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}

const updateAccountTotals = `
UPDATE accounts
SET debit = $2, credit = $3, balance = $4, updated_at = $5
WHERE id = $1
`

// UpdateTotals writes the cached debit/credit/balance of an account.
func (r *AccountRepository) UpdateTotals(ctx context.Context, id string, debit, credit, balance decimal.Decimal, updatedAt time.Time) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateAccountTotals, id,
			decimalToNumeric(debit),
			decimalToNumeric(credit),
			decimalToNumeric(balance),
			timeToPgTimestamptz(updatedAt),
		)

		return err
	})
}

const childAccountTotals = `
SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
FROM accounts
WHERE parent_id = $1
`

// ChildTotals sums cached debit/credit over the direct child accounts.
func (r *AccountRepository) ChildTotals(ctx context.Context, parentID string) (decimal.Decimal, decimal.Decimal, error) {
	var debit, credit pgtype.Numeric

	err := r.pool.QueryRow(ctx, childAccountTotals, parentID).Scan(&debit, &credit)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(debit), numericToDecimal(credit), nil
}
