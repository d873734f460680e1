package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/rollup/internal/domain"
)

// DispatchMetrics receives dispatch-level counters. Implemented by the
// metrics package; a nil value disables recording.
type DispatchMetrics interface {
	EventDispatched(name string)
	EventSuppressed(name string)
	WorkerCompleted(worker string, elapsed time.Duration)
	WorkerFailed(worker string)
}

// Dispatcher routes events to the workers registered for their names,
// synchronously, on the caller's stack. The registry is built once at
// startup and never mutated afterwards.
type Dispatcher struct {
	registry map[domain.EventName][]Worker
	logger   zerolog.Logger
	metrics  DispatchMetrics
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(logger zerolog.Logger, metrics DispatchMetrics) *Dispatcher {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Dispatcher{
		registry: make(map[domain.EventName][]Worker),
		logger:   logger,
		metrics:  metrics,
	}
}

// Register binds workers to every event name they declare. Registration
// order is dispatch order.
func (d *Dispatcher) Register(workers ...Worker) {
	for _, w := range workers {
		for _, name := range w.Names() {
			d.registry[name] = append(d.registry[name], w)
		}
	}
}

// Fire dispatches an event as a new top-level cycle with a fresh
// suppression scope.
func (d *Dispatcher) Fire(ctx context.Context, ev domain.Event) error {
	return d.FireScoped(ctx, NewScope(), ev)
}

// FireScoped dispatches an event within an existing scope. Workers use it to
// cascade follow-up events inside their own dispatch cycle so suppression
// carries through.
//
// A failing worker does not stop the remaining workers for the same event;
// its error is logged, counted, and folded into the joined return value.
func (d *Dispatcher) FireScoped(ctx context.Context, scope *Scope, ev domain.Event) error {
	if scope == nil {
		scope = NewScope()
	}

	if scope.Suppressed(ev.Name()) {
		d.metrics.EventSuppressed(string(ev.Name()))
		d.logger.Debug().
			Str("event", string(ev.Name())).
			Str("value", ev.Value()).
			Msg("event suppressed")
		return nil
	}

	d.metrics.EventDispatched(string(ev.Name()))

	var errs []error
	for _, w := range d.registry[ev.Name()] {
		name := fmt.Sprintf("%T", w)
		start := time.Now()

		if _, err := w.Run(ctx, scope, ev); err != nil {
			d.metrics.WorkerFailed(name)
			d.logger.Error().
				Err(err).
				Str("event", string(ev.Name())).
				Str("value", ev.Value()).
				Str("worker", name).
				Msg("worker failed")
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		d.metrics.WorkerCompleted(name, time.Since(start))
	}

	return errors.Join(errs...)
}

type noopMetrics struct{}

func (noopMetrics) EventDispatched(string) {}
func (noopMetrics) EventSuppressed(string) {}
func (noopMetrics) WorkerCompleted(string, time.Duration) {}
func (noopMetrics) WorkerFailed(string) {}
