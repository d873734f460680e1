package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// SubaccountRollupWorker recomputes a subaccount's cached debit, credit and
// balance from its posted ledger lines, patching each line's running
// balance along the way. Triggered whenever a line of the subaccount is
// saved or deleted; the event value carries the subaccount ID.
type SubaccountRollupWorker struct {
	subaccounts SubaccountRepository
	lines       LedgerLineRepository
	dispatcher  *Dispatcher
	logger      zerolog.Logger
	cfg         ReconcileConfig
}

// NewSubaccountRollupWorker creates a new SubaccountRollupWorker.
func NewSubaccountRollupWorker(
	subaccounts SubaccountRepository,
	lines LedgerLineRepository,
	dispatcher *Dispatcher,
	logger zerolog.Logger,
	cfg ReconcileConfig,
) *SubaccountRollupWorker {
	return &SubaccountRollupWorker{
		subaccounts: subaccounts,
		lines:       lines,
		dispatcher:  dispatcher,
		logger:      logger,
		cfg:         cfg.withDefaults(),
	}
}

// Names implements Worker.
func (w *SubaccountRollupWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventLedgerLineSaved, domain.EventLedgerLineDeleted}
}

// Run walks the subaccount's lines once, in canonical posting order, in
// fixed-size pages so ledgers with unbounded line counts never load whole.
// Line balances and subaccount totals are only rewritten when they drift
// beyond the tolerance.
func (w *SubaccountRollupWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	sub, err := w.subaccounts.GetByID(ctx, ev.Value())
	if errors.Is(err, domain.ErrSubaccountNotFound) {
		// Deleted between emission and dispatch: nothing to reconcile.
		return scope.Done(), nil
	}
	if err != nil {
		return scope.Done(), err
	}

	// The line balance patches below would re-emit line-saved events through
	// the same dispatcher and loop back into this worker.
	release := scope.Suppress(domain.EventLedgerLineSaved, domain.EventLedgerLineDeleted)
	defer release()

	debit := decimal.Zero
	credit := decimal.Zero
	balance := decimal.Zero

	for offset := 0; ; offset += w.cfg.PageSize {
		page, err := w.lines.ListBySubaccount(ctx, sub.ID, offset, w.cfg.PageSize)
		if err != nil {
			return scope.Done(), err
		}

		for _, line := range page {
			debit = debit.Add(line.Debit)
			credit = credit.Add(line.Credit)
			balance = balance.Add(line.Amount())

			if domain.WithinTolerance(line.Balance, balance, w.cfg.Epsilon) {
				continue
			}

			// Derived-field patch, not a user edit. A failed write does not
			// stop the walk; the rest of the ledger still reconciles.
			if err := w.lines.UpdateBalance(ctx, line.ID, balance, domain.SaveModeReconciliation); err != nil {
				w.logger.Error().
					Err(err).
					Str("line_id", line.ID).
					Str("subaccount_id", sub.ID).
					Msg("failed to patch running balance")
				continue
			}
			w.cfg.Metrics.LineRebalanced()
		}

		if len(page) < w.cfg.PageSize {
			break
		}
	}

	if domain.WithinTolerance(sub.Debit, debit, w.cfg.Epsilon) &&
		domain.WithinTolerance(sub.Credit, credit, w.cfg.Epsilon) &&
		domain.WithinTolerance(sub.Balance, balance, w.cfg.Epsilon) {
		w.cfg.Metrics.TotalUnchanged("subaccount")
		return scope.Done(), nil
	}

	if err := w.subaccounts.UpdateTotals(ctx, sub.ID, debit, credit, balance, time.Now().UTC()); err != nil {
		return scope.Done(), err
	}
	w.cfg.Metrics.TotalWritten("subaccount")

	// Flag the parent account for roll-up within the same dispatch cycle.
	return scope.Done(), w.dispatcher.FireScoped(ctx, scope,
		domain.NewEvent(domain.EventSubaccountSaved, sub.AccountID,
			domain.WithParam("subaccount", sub.ID)))
}
