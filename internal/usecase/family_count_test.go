package usecase_test

import (
	"context"
	"testing"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
	"github.com/iho/rollup/internal/usecase/mocks"
)

func TestFamilyCount_NoOpWhenFamilyUnchanged(t *testing.T) {
	families := mocks.NewMockFamilyRepository()
	products := mocks.NewMockProductRepository()

	families.Put(&domain.Family{Code: "FAM-1", ProductCount: 7})

	var reads int
	products.CountByFamilyFunc = func(ctx context.Context, familyCode string) (int64, error) {
		reads++
		return 0, nil
	}

	worker := usecase.NewFamilyCountWorker(families, products)

	ev := domain.NewEvent(domain.EventProductSaved, "PROD-1",
		domain.WithParam("family", "FAM-1"),
		domain.WithPrevious("family", "FAM-1"),
	)
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reads != 0 {
		t.Errorf("expected no count queries on an unchanged family, got %d", reads)
	}
	if families.UpdateProductCountCalls != 0 {
		t.Errorf("expected no writes on an unchanged family, got %d", families.UpdateProductCountCalls)
	}
}

func TestFamilyCount_MoveRecountsBothFamilies(t *testing.T) {
	families := mocks.NewMockFamilyRepository()
	products := mocks.NewMockProductRepository()

	families.Put(&domain.Family{Code: "FAM-1", ProductCount: 3})
	families.Put(&domain.Family{Code: "FAM-2", ProductCount: 0})

	// PROD-1 already moved to FAM-2 in the triggering save.
	products.Add(
		&domain.Product{Reference: "PROD-1", FamilyCode: "FAM-2"},
		&domain.Product{Reference: "PROD-2", FamilyCode: "FAM-1"},
		&domain.Product{Reference: "PROD-3", FamilyCode: "FAM-1"},
	)

	worker := usecase.NewFamilyCountWorker(families, products)

	ev := domain.NewEvent(domain.EventProductSaved, "PROD-1",
		domain.WithParam("family", "FAM-2"),
		domain.WithPrevious("family", "FAM-1"),
	)
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fam1, _ := families.GetByCode(context.Background(), "FAM-1")
	fam2, _ := families.GetByCode(context.Background(), "FAM-2")
	if fam1.ProductCount != 2 {
		t.Errorf("old family count = %d, want 2", fam1.ProductCount)
	}
	if fam2.ProductCount != 1 {
		t.Errorf("new family count = %d, want 1", fam2.ProductCount)
	}
}

func TestFamilyCount_CreateCountsOnlyCurrent(t *testing.T) {
	families := mocks.NewMockFamilyRepository()
	products := mocks.NewMockProductRepository()

	families.Put(&domain.Family{Code: "FAM-1"})
	products.Add(&domain.Product{Reference: "PROD-1", FamilyCode: "FAM-1"})

	worker := usecase.NewFamilyCountWorker(families, products)

	// No previous sub-bag: product creation.
	ev := domain.NewEvent(domain.EventProductSaved, "PROD-1", domain.WithParam("family", "FAM-1"))
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if families.UpdateProductCountCalls != 1 {
		t.Errorf("expected 1 write, got %d", families.UpdateProductCountCalls)
	}
}

func TestFamilyCount_MissingFamilySkipped(t *testing.T) {
	families := mocks.NewMockFamilyRepository()
	products := mocks.NewMockProductRepository()

	worker := usecase.NewFamilyCountWorker(families, products)

	ev := domain.NewEvent(domain.EventProductDeleted, "PROD-1", domain.WithParam("family", "FAM-GONE"))
	if _, err := worker.Run(context.Background(), usecase.NewScope(), ev); err != nil {
		t.Fatalf("missing family must not be an error, got: %v", err)
	}
	if families.UpdateProductCountCalls != 0 {
		t.Errorf("expected no writes, got %d", families.UpdateProductCountCalls)
	}
}
