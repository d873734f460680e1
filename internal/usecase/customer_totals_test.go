package usecase_test

import (
	"context"
	"testing"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
	"github.com/iho/rollup/internal/usecase/mocks"
)

func TestCustomerTotals_Recompute(t *testing.T) {
	customers := mocks.NewMockCustomerRepository()
	invoices := mocks.NewMockInvoiceRepository()

	customers.Put(&domain.Customer{Code: "CUST-1"})
	invoices.Add(
		&domain.Invoice{Code: "INV-1", CustomerCode: "CUST-1", Total: dec("350"), Paid: true},
		&domain.Invoice{Code: "INV-2", CustomerCode: "CUST-1", Total: dec("250"), Paid: false},
		&domain.Invoice{Code: "INV-3", CustomerCode: "CUST-2", Total: dec("999"), Paid: false},
	)

	worker := usecase.NewCustomerTotalsWorker(customers, invoices)

	ev := domain.NewEvent(domain.EventInvoiceSaved, "INV-2", domain.WithParam("customer", "CUST-1"))
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cust, _ := customers.GetByCode(context.Background(), "CUST-1")
	if !cust.TotalInvoiced.Equal(dec("600")) {
		t.Errorf("invoiced = %s, want 600", cust.TotalInvoiced)
	}
	if !cust.TotalOutstanding.Equal(dec("250")) {
		t.Errorf("outstanding = %s, want 250", cust.TotalOutstanding)
	}
}

func TestCustomerTotals_WritesUnconditionally(t *testing.T) {
	customers := mocks.NewMockCustomerRepository()
	invoices := mocks.NewMockInvoiceRepository()

	customers.Put(&domain.Customer{Code: "CUST-1", TotalInvoiced: dec("100"), TotalOutstanding: dec("100")})
	invoices.Add(&domain.Invoice{Code: "INV-1", CustomerCode: "CUST-1", Total: dec("100")})

	worker := usecase.NewCustomerTotalsWorker(customers, invoices)
	ev := domain.NewEvent(domain.EventInvoiceSaved, "INV-1", domain.WithParam("customer", "CUST-1"))

	// Unlike the ledger roll-ups there is no tolerance gate here: every
	// dispatch rewrites the scalars.
	for i := 0; i < 2; i++ {
		if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if customers.UpdateTotalsCalls != 2 {
		t.Errorf("expected 2 writes, got %d", customers.UpdateTotalsCalls)
	}
}

func TestCustomerTotals_ShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		ev   domain.Event
	}{
		{
			"empty customer key",
			domain.NewEvent(domain.EventInvoiceSaved, "INV-1"),
		},
		{
			"unknown customer",
			domain.NewEvent(domain.EventInvoiceSaved, "INV-1", domain.WithParam("customer", "CUST-GONE")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := mocks.NewMockCustomerRepository()
			invoices := mocks.NewMockInvoiceRepository()
			worker := usecase.NewCustomerTotalsWorker(customers, invoices)

			if _, err := worker.Run(context.Background(), usecase.NewScope(), tt.ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if customers.UpdateTotalsCalls != 0 {
				t.Errorf("expected no writes, got %d", customers.UpdateTotalsCalls)
			}
		})
	}
}
