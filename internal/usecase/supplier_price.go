package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/rollup/internal/domain"
)

// Settings section/key gating the supplier price sync.
const (
	settingsSectionPurchases  = "purchases"
	settingsKeySupplierPrices = "updateSupplierPrices"
)

// SupplierPriceWorker records the last known supplier price for every
// product reference on an updated purchase document. An existing record is
// overwritten only when it is older than the document: last write wins by
// recency, not by dispatch order.
type SupplierPriceWorker struct {
	documents        PurchaseDocumentRepository
	supplierProducts SupplierProductRepository
	settings         SettingsRepository
	rounder          Rounder
	ids              IDGenerator
	logger           zerolog.Logger
}

// NewSupplierPriceWorker creates a new SupplierPriceWorker.
func NewSupplierPriceWorker(
	documents PurchaseDocumentRepository,
	supplierProducts SupplierProductRepository,
	settings SettingsRepository,
	rounder Rounder,
	ids IDGenerator,
	logger zerolog.Logger,
) *SupplierPriceWorker {
	return &SupplierPriceWorker{
		documents:        documents,
		supplierProducts: supplierProducts,
		settings:         settings,
		rounder:          rounder,
		ids:              ids,
		logger:           logger,
	}
}

// Names implements Worker.
func (w *SupplierPriceWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventPurchaseDocUpdated}
}

// Run upserts one supplier price record per qualifying document line. Lines
// with zero quantity, zero price or no reference are ignored; a failed
// upsert logs and moves on to the remaining lines.
func (w *SupplierPriceWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	enabled, err := w.syncEnabled(ctx)
	if err != nil {
		return scope.Done(), err
	}
	if !enabled {
		return scope.Done(), nil
	}

	code := ev.Value()
	if code == "" {
		return scope.Done(), nil
	}

	doc, err := w.documents.GetByCode(ctx, code)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return scope.Done(), nil
	}
	if err != nil {
		return scope.Done(), err
	}

	for _, line := range doc.Lines {
		if !line.Quantity.IsPositive() || !line.UnitPrice.IsPositive() || line.Reference == "" {
			continue
		}

		if err := w.upsert(ctx, doc, line); err != nil {
			w.logger.Error().
				Err(err).
				Str("document", doc.Code).
				Str("reference", line.Reference).
				Msg("failed to record supplier price")
		}
	}

	return scope.Done(), nil
}

func (w *SupplierPriceWorker) upsert(ctx context.Context, doc *domain.PurchaseDocument, line domain.PurchaseLine) error {
	existing, err := w.supplierProducts.GetBySupplierReference(ctx, doc.SupplierCode, line.Reference)
	switch {
	case errors.Is(err, domain.ErrSupplierProductNotFound):
		return w.supplierProducts.Save(ctx, &domain.SupplierProduct{
			ID:           w.ids.Generate(),
			SupplierCode: doc.SupplierCode,
			Reference:    line.Reference,
			Price:        w.rounder.Round(line.UnitPrice),
			UpdatedAt:    doc.Date,
		})
	case err != nil:
		return err
	}

	if !existing.UpdatedAt.Before(doc.Date) {
		// The stored price is at least as recent as this document.
		return nil
	}

	existing.Price = w.rounder.Round(line.UnitPrice)
	existing.UpdatedAt = doc.Date

	return w.supplierProducts.Save(ctx, existing)
}

// syncEnabled reads the settings gate. A missing setting means the feature
// has never been switched off, so the sync runs.
func (w *SupplierPriceWorker) syncEnabled(ctx context.Context) (bool, error) {
	raw, err := w.settings.Get(ctx, settingsSectionPurchases, settingsKeySupplierPrices)
	if errors.Is(err, domain.ErrSettingNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return enabled, nil
}
