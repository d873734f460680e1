package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/rollup/internal/domain"
)

// FamilyCountWorker keeps each family's cached product count in sync when
// products are created, deleted or moved between families.
type FamilyCountWorker struct {
	families FamilyRepository
	products ProductRepository
}

// NewFamilyCountWorker creates a new FamilyCountWorker.
func NewFamilyCountWorker(families FamilyRepository, products ProductRepository) *FamilyCountWorker {
	return &FamilyCountWorker{
		families: families,
		products: products,
	}
}

// Names implements Worker.
func (w *FamilyCountWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventProductSaved, domain.EventProductDeleted}
}

// Run short-circuits when the product's family did not actually change: a
// save that keeps the same foreign key cannot alter any count. On a move it
// recounts both the new and the old family.
func (w *FamilyCountWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	current := ev.Param("family")
	previous, hasPrevious := ev.Previous("family")

	if hasPrevious && previous == current {
		return scope.Done(), nil
	}

	codes := []string{current}
	if hasPrevious && previous != "" {
		codes = append(codes, previous)
	}

	for _, code := range codes {
		if code == "" {
			continue
		}

		if err := w.recount(ctx, code); err != nil {
			return scope.Done(), err
		}
	}

	return scope.Done(), nil
}

func (w *FamilyCountWorker) recount(ctx context.Context, code string) error {
	if _, err := w.families.GetByCode(ctx, code); err != nil {
		if errors.Is(err, domain.ErrFamilyNotFound) {
			return nil
		}
		return err
	}

	count, err := w.products.CountByFamily(ctx, code)
	if err != nil {
		return err
	}

	return w.families.UpdateProductCount(ctx, code, count, time.Now().UTC())
}
