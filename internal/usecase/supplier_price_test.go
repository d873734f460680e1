package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
	"github.com/iho/rollup/internal/usecase/mocks"
)

func newSupplierPriceFixture() (*mocks.MockPurchaseDocumentRepository, *mocks.MockSupplierProductRepository, *mocks.MockSettingsRepository, *usecase.SupplierPriceWorker) {
	docs := mocks.NewMockPurchaseDocumentRepository()
	records := mocks.NewMockSupplierProductRepository()
	settings := mocks.NewMockSettingsRepository()
	worker := usecase.NewSupplierPriceWorker(docs, records, settings, roundTo2{}, mocks.NewMockIDGenerator(), zerolog.Nop())
	return docs, records, settings, worker
}

func purchaseDoc(date time.Time) *domain.PurchaseDocument {
	return &domain.PurchaseDocument{
		Code:         "ALB-77",
		SupplierCode: "SUPP-1",
		Date:         date,
		Lines: []domain.PurchaseLine{
			{ID: "PL-1", Reference: "X001", Quantity: dec("5"), UnitPrice: dec("12.0")},
		},
	}
}

func TestSupplierPrice_OverwritesOlderRecord(t *testing.T) {
	docs, records, _, worker := newSupplierPriceFixture()

	docDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	docs.Put(purchaseDoc(docDate))
	records.Put(&domain.SupplierProduct{
		ID:           "SP-1",
		SupplierCode: "SUPP-1",
		Reference:    "X001",
		Price:        dec("10.5"),
		UpdatedAt:    docDate.AddDate(0, -1, 0),
	})

	ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-77")
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := records.Get("SUPP-1", "X001")
	if !got.Price.Equal(dec("12")) {
		t.Errorf("price = %s, want 12", got.Price)
	}
	if !got.UpdatedAt.Equal(docDate) {
		t.Errorf("timestamp = %s, want %s", got.UpdatedAt, docDate)
	}
}

func TestSupplierPrice_KeepsNewerRecord(t *testing.T) {
	docs, records, _, worker := newSupplierPriceFixture()

	docDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	newer := docDate.AddDate(0, 1, 0)
	docs.Put(purchaseDoc(docDate))
	records.Put(&domain.SupplierProduct{
		ID:           "SP-1",
		SupplierCode: "SUPP-1",
		Reference:    "X001",
		Price:        dec("11.0"),
		UpdatedAt:    newer,
	})

	ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-77")
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := records.Get("SUPP-1", "X001")
	if !got.Price.Equal(dec("11.0")) {
		t.Errorf("price = %s, want 11.0 untouched", got.Price)
	}
	if !got.UpdatedAt.Equal(newer) {
		t.Errorf("timestamp changed to %s", got.UpdatedAt)
	}
}

func TestSupplierPrice_CreatesMissingRecord(t *testing.T) {
	docs, records, _, worker := newSupplierPriceFixture()

	docDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	docs.Put(purchaseDoc(docDate))

	ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-77")
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := records.Get("SUPP-1", "X001")
	if got == nil {
		t.Fatal("expected a record to be created")
	}
	if got.ID == "" {
		t.Error("expected a generated ID")
	}
	if !got.Price.Equal(dec("12")) {
		t.Errorf("price = %s, want 12", got.Price)
	}
}

func TestSupplierPrice_SkipsUnqualifiedLines(t *testing.T) {
	docs, records, _, worker := newSupplierPriceFixture()

	docs.Put(&domain.PurchaseDocument{
		Code:         "ALB-77",
		SupplierCode: "SUPP-1",
		Date:         time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Lines: []domain.PurchaseLine{
			{ID: "PL-1", Reference: "X001", Quantity: dec("0"), UnitPrice: dec("12.0")},
			{ID: "PL-2", Reference: "X002", Quantity: dec("3"), UnitPrice: dec("0")},
			{ID: "PL-3", Reference: "", Quantity: dec("3"), UnitPrice: dec("9.0")},
		},
	})

	ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-77")
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if records.SaveCalls != 0 {
		t.Errorf("expected no saves for unqualified lines, got %d", records.SaveCalls)
	}
}

func TestSupplierPrice_SettingsGate(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		set       bool
		wantSaves int
	}{
		{"disabled by setting", "false", true, 0},
		{"enabled by setting", "true", true, 1},
		{"missing setting defaults to enabled", "", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, records, settings, worker := newSupplierPriceFixture()
			if tt.set {
				settings.Set("purchases", "updateSupplierPrices", tt.value)
			}
			docs.Put(purchaseDoc(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))

			ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-77")
			if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if records.SaveCalls != tt.wantSaves {
				t.Errorf("saves = %d, want %d", records.SaveCalls, tt.wantSaves)
			}
		})
	}
}

func TestSupplierPrice_MissingDocument(t *testing.T) {
	_, records, _, worker := newSupplierPriceFixture()

	ev := domain.NewEvent(domain.EventPurchaseDocUpdated, "ALB-GONE")
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("missing document must not be an error, got: %v", err)
	}
	if records.SaveCalls != 0 {
		t.Errorf("expected no saves, got %d", records.SaveCalls)
	}
}
