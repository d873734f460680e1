package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/rollup/internal/domain"
	"github.com/iho/rollup/internal/usecase"
)

// Service implements usecase.PricingService. The cost price of a variant is
// the most recent price any supplier is known to charge for its reference.
type Service struct {
	supplierProducts usecase.SupplierProductRepository
	variants         usecase.VariantRepository
	rounder          usecase.Rounder
	logger           zerolog.Logger
}

// NewService creates a new pricing Service.
func NewService(
	supplierProducts usecase.SupplierProductRepository,
	variants usecase.VariantRepository,
	rounder usecase.Rounder,
	logger zerolog.Logger,
) *Service {
	return &Service{
		supplierProducts: supplierProducts,
		variants:         variants,
		rounder:          rounder,
		logger:           logger,
	}
}

// UpdateCostPrice refreshes the variant's cost price from the latest known
// supplier price. A variant no supplier sells keeps its current cost price.
func (s *Service) UpdateCostPrice(ctx context.Context, variant *domain.Variant) error {
	latest, err := s.supplierProducts.LatestByReference(ctx, variant.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrSupplierProductNotFound) {
			s.logger.Debug().
				Str("variant", variant.Reference).
				Msg("no supplier price known, cost price unchanged")

			return nil
		}

		return fmt.Errorf("load latest supplier price: %w", err)
	}

	cost := s.rounder.Round(latest.Price)
	if cost.Equal(variant.CostPrice) {
		return nil
	}

	if err := s.variants.UpdateCostPrice(ctx, variant.Reference, cost, latest.UpdatedAt); err != nil {
		return fmt.Errorf("update cost price: %w", err)
	}

	s.logger.Info().
		Str("variant", variant.Reference).
		Str("supplier", latest.SupplierCode).
		Str("cost_price", cost.String()).
		Msg("variant cost price updated")

	return nil
}
