package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/rollup/internal/domain"
)

// PurchaseDocumentRepository implements usecase.PurchaseDocumentRepository.
type PurchaseDocumentRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseDocumentRepository creates a new PurchaseDocumentRepository.
func NewPurchaseDocumentRepository(pool *pgxpool.Pool) *PurchaseDocumentRepository {
	return &PurchaseDocumentRepository{pool: pool}
}

const getPurchaseDocumentByCode = `
SELECT code, supplier_code, date
FROM purchase_documents
WHERE code = $1
`

const listPurchaseLinesByDocument = `
SELECT id, reference, quantity, unit_price
FROM purchase_lines
WHERE document_code = $1
ORDER BY id
`

// GetByCode loads a purchase document together with its lines.
func (r *PurchaseDocumentRepository) GetByCode(ctx context.Context, code string) (*domain.PurchaseDocument, error) {
	var (
		doc  domain.PurchaseDocument
		date pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, getPurchaseDocumentByCode, code).Scan(
		&doc.Code, &doc.SupplierCode, &date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}

		return nil, err
	}

	doc.Date = date.Time

	rows, err := r.pool.Query(ctx, listPurchaseLinesByDocument, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line           domain.PurchaseLine
			qty, unitPrice pgtype.Numeric
		)

		if err := rows.Scan(&line.ID, &line.Reference, &qty, &unitPrice); err != nil {
			return nil, err
		}

		line.Quantity = numericToDecimal(qty)
		line.UnitPrice = numericToDecimal(unitPrice)

		doc.Lines = append(doc.Lines, line)
	}

	return &doc, rows.Err()
}
