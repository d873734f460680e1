package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/rollup/internal/domain"
)

// AccountRollupWorker recomputes an account's cached totals from its direct
// children: child accounts plus subaccounts. It does not recurse into
// grandchildren — each child is assumed to carry correct cached totals
// maintained by its own worker invocation, so multi-level trees converge
// bottom-up through independent events rather than top-down descent.
type AccountRollupWorker struct {
	accounts    AccountRepository
	subaccounts SubaccountRepository
	rounder     Rounder
	cfg         ReconcileConfig
}

// NewAccountRollupWorker creates a new AccountRollupWorker.
func NewAccountRollupWorker(
	accounts AccountRepository,
	subaccounts SubaccountRepository,
	rounder Rounder,
	cfg ReconcileConfig,
) *AccountRollupWorker {
	return &AccountRollupWorker{
		accounts:    accounts,
		subaccounts: subaccounts,
		rounder:     rounder,
		cfg:         cfg.withDefaults(),
	}
}

// Names implements Worker.
func (w *AccountRollupWorker) Names() []domain.EventName {
	return []domain.EventName{domain.EventSubaccountSaved, domain.EventAccountSaved}
}

// Run sums the direct children, then persists rounded totals only when the
// balance drifted beyond the tolerance.
func (w *AccountRollupWorker) Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error) {
	acct, err := w.accounts.GetByID(ctx, ev.Value())
	if errors.Is(err, domain.ErrAccountNotFound) {
		return scope.Done(), nil
	}
	if err != nil {
		return scope.Done(), err
	}

	// Saving the account re-emits its own event name; propagation to the
	// ancestor chain is the emitter's responsibility, not a feedback loop.
	release := scope.Suppress(domain.EventAccountSaved)
	defer release()

	childDebit, childCredit, err := w.accounts.ChildTotals(ctx, acct.ID)
	if err != nil {
		return scope.Done(), err
	}

	subDebit, subCredit, err := w.subaccounts.TotalsByAccount(ctx, acct.ID)
	if err != nil {
		return scope.Done(), err
	}

	debit := childDebit.Add(subDebit)
	credit := childCredit.Add(subCredit)
	balance := debit.Sub(credit)

	if domain.WithinTolerance(acct.Balance, balance, w.cfg.Epsilon) {
		w.cfg.Metrics.TotalUnchanged("account")
		return scope.Done(), nil
	}

	err = w.accounts.UpdateTotals(ctx, acct.ID,
		w.rounder.Round(debit),
		w.rounder.Round(credit),
		w.rounder.Round(balance),
		time.Now().UTC())
	if err == nil {
		w.cfg.Metrics.TotalWritten("account")
	}

	return scope.Done(), err
}
