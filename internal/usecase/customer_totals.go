package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/rollup/internal/domain"
)

// CustomerTotalsWorker recomputes a customer's invoiced and outstanding
// totals whenever one of its invoices is saved or deleted. Both totals come
// from scalar aggregate queries; dependent rows are never loaded into
// memory.
type CustomerTotalsWorker struct {
	customers CustomerRepository
	invoices  InvoiceRepository
}

// NewCustomerTotalsWorker creates a new CustomerTotalsWorker.
func NewCustomerTotalsWorker(customers CustomerRepository, invoices InvoiceRepository) *CustomerTotalsWorker {
	return &CustomerTotalsWorker{
		customers: customers,
		invoices:  invoices,
	}
}

// Names implements Worker.
func (w *CustomerTotalsWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventInvoiceSaved, domain.EventInvoiceDeleted}
}

// Run rewrites the customer totals unconditionally: unlike the ledger
// roll-ups there is no tolerance gate on these scalars.
func (w *CustomerTotalsWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	code := ev.Param("customer")
	if code == "" {
		return scope.Done(), nil
	}

	if _, err := w.customers.GetByCode(ctx, code); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return scope.Done(), nil
		}
		return scope.Done(), err
	}

	invoiced, err := w.invoices.SumByCustomer(ctx, code)
	if err != nil {
		return scope.Done(), err
	}

	outstanding, err := w.invoices.SumOutstandingByCustomer(ctx, code)
	if err != nil {
		return scope.Done(), err
	}

	return scope.Done(), w.customers.UpdateTotals(ctx, code, invoiced, outstanding, time.Now().UTC())
}
