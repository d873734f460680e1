package usecase

import (
	"context"
	"errors"

	"github.com/iho/rollup/internal/domain"
)

// CostPriceWorker resolves the variant named by the event and hands it to
// the pricing service. The costing computation itself lives outside the
// engine; this worker only does event-to-entity resolution and the no-op
// guards.
type CostPriceWorker struct {
	variants VariantRepository
	pricing  PricingService
}

// NewCostPriceWorker creates a new CostPriceWorker.
func NewCostPriceWorker(variants VariantRepository, pricing PricingService) *CostPriceWorker {
	return &CostPriceWorker{
		variants: variants,
		pricing:  pricing,
	}
}

// Names implements Worker.
func (w *CostPriceWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventVariantSaved}
}

// Run implements Worker.
func (w *CostPriceWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	reference := ev.Value()
	if reference == "" {
		return scope.Done(), nil
	}

	variant, err := w.variants.GetByReference(ctx, reference)
	if errors.Is(err, domain.ErrVariantNotFound) {
		return scope.Done(), nil
	}
	if err != nil {
		return scope.Done(), err
	}

	return scope.Done(), w.pricing.UpdateCostPrice(ctx, variant)
}
