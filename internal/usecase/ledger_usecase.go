package usecase

import (
	"context"

	"github.com/iho/rollup/internal/domain"
)

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
	cfg        ReconcileConfig
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository, cfg ReconcileConfig) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
		cfg:        cfg.withDefaults(),
	}
}

// CheckConsistency verifies that the cached subaccount balances agree with
// the posted lines, to within the tolerance. The engine keeps this true
// eventually; a persistent mismatch means an event was lost or a worker is
// misregistered.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	lineTotal, cachedTotal, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return false, err
	}

	consistent := domain.WithinTolerance(lineTotal, cachedTotal, uc.cfg.Epsilon)
	uc.cfg.Metrics.ConsistencyChecked(consistent)

	if !consistent {
		return false, domain.ErrInconsistentLedger
	}

	return true, nil
}
