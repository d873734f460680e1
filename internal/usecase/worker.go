package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/rollup/internal/domain"
)

// Done is the terminal signal of a worker run. It is obtained from
// Scope.Done so that every exit path of Run has to state explicitly that the
// worker finished; a Run that compiles cannot silently forget to complete.
type Done struct{ _ struct{} }

// Worker is a reconciliation job bound to one or more event names. Run is
// the sole entry point; it must return scope.Done() on every exit path,
// with or without an error.
type Worker interface {
	// Names lists the event names this worker reacts to. Resolved once at
	// registration time.
	Names() []domain.EventName
	Run(ctx context.Context, scope *Scope, ev domain.Event) (Done, error)
}

// Scope carries the suppression state of one top-level dispatch. A worker
// that is about to perform writes which would re-trigger an event family
// through the same dispatcher calls Suppress first; the suppression lasts
// until the returned release runs, at most until the top-level dispatch
// returns. Scopes are never shared across dispatch cycles, so a suppression
// can never leak into future events.
type Scope struct {
	suppressed map[domain.EventName]int
}

// NewScope creates an empty suppression scope. The dispatcher opens one per
// top-level Fire; workers receive it and pass it along when they cascade.
func NewScope() *Scope {
	return &Scope{suppressed: make(map[domain.EventName]int)}
}

// Suppress blocks dispatch of the named events within this scope. The
// returned release undoes exactly this call; suppressions nest, so an event
// stays blocked until every overlapping Suppress has been released.
func (s *Scope) Suppress(names ...domain.EventName) (release func()) {
	for _, n := range names {
		s.suppressed[n]++
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for _, n := range names {
			if s.suppressed[n] > 0 {
				s.suppressed[n]--
			}
		}
	}
}

// Suppressed reports whether an event name is currently blocked.
func (s *Scope) Suppressed(name domain.EventName) bool {
	return s.suppressed[name] > 0
}

// Done marks the current worker run as finished.
func (s *Scope) Done() Done {
	return Done{}
}

// ReconcileMetrics receives the write/skip outcomes of reconciliation runs.
type ReconcileMetrics interface {
	// TotalWritten counts a cached aggregate rewritten for the entity kind.
	TotalWritten(entity string)
	// TotalUnchanged counts a recomputation that landed inside the tolerance.
	TotalUnchanged(entity string)
	// LineRebalanced counts one ledger line running-balance patch.
	LineRebalanced()
	// ConsistencyChecked counts one ledger-wide consistency check outcome.
	ConsistencyChecked(consistent bool)
}

type noopReconcileMetrics struct{}

func (noopReconcileMetrics) TotalWritten(string) {}
func (noopReconcileMetrics) TotalUnchanged(string) {}
func (noopReconcileMetrics) LineRebalanced() {}
func (noopReconcileMetrics) ConsistencyChecked(bool) {}

// ReconcileConfig carries the tunables shared by the roll-up workers.
type ReconcileConfig struct {
	// PageSize bounds how many ledger lines are held in memory at once.
	PageSize int
	// Epsilon is the tolerance below which a recomputed aggregate is
	// treated as unchanged and the write is skipped.
	Epsilon decimal.Decimal
	// Metrics is optional; when nil, outcomes go unrecorded.
	Metrics ReconcileMetrics
}

// withDefaults fills in the observed production values for unset fields.
func (c ReconcileConfig) withDefaults() ReconcileConfig {
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
	if c.Epsilon.IsZero() {
		c.Epsilon = decimal.New(1, -2) // 0.01
	}
	if c.Metrics == nil {
		c.Metrics = noopReconcileMetrics{}
	}
	return c
}
