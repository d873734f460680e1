package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// LedgerLineRepository implements usecase.LedgerLineRepository.
type LedgerLineRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewLedgerLineRepository creates a new LedgerLineRepository.
func NewLedgerLineRepository(pool *pgxpool.Pool, retrier *Retrier) *LedgerLineRepository {
	return &LedgerLineRepository{
		pool:    pool,
		retrier: retrier,
	}
}

const listLinesBySubaccount = `
SELECT id, entry_id, entry_number, date, subaccount_id, concept, debit, credit, balance, created_at
FROM ledger_lines
WHERE subaccount_id = $1
ORDER BY date, entry_number, id
LIMIT $2 OFFSET $3
`

// ListBySubaccount returns one page of the subaccount's lines in canonical
// posting order.
func (r *LedgerLineRepository) ListBySubaccount(ctx context.Context, subaccountID string, offset, limit int) ([]*domain.LedgerLine, error) {
	rows, err := r.pool.Query(ctx, listLinesBySubaccount, subaccountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*domain.LedgerLine, 0, limit)
	for rows.Next() {
		var (
			line                   domain.LedgerLine
			debit, credit, balance pgtype.Numeric
			date, createdAt        pgtype.Timestamptz
		)

		if err := rows.Scan(
			&line.ID, &line.EntryID, &line.EntryNumber, &date,
			&line.SubaccountID, &line.Concept,
			&debit, &credit, &balance, &createdAt,
		); err != nil {
			return nil, err
		}

		line.Date = date.Time
		line.Debit = numericToDecimal(debit)
		line.Credit = numericToDecimal(credit)
		line.Balance = numericToDecimal(balance)
		line.CreatedAt = createdAt.Time

		lines = append(lines, &line)
	}

	return lines, rows.Err()
}

const updateLineBalance = `
UPDATE ledger_lines
SET balance = $2
WHERE id = $1
`

// UpdateBalance patches a line's cached running balance. Reconciliation
// writes bypass the user-edit validation path, so the mode only matters to
// callers that layer validation on top of this repository.
func (r *LedgerLineRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, _ domain.SaveMode) error {
	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, updateLineBalance, id, decimalToNumeric(balance))

		return err
	})
}
