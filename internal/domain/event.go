package domain

import "fmt"

// EventName identifies a domain event. The set is closed so the dispatcher
// registry can be checked at startup instead of comparing free-form strings.
type EventName string

const (
	EventLedgerLineSaved    EventName = "model.ledgerline.saved"
	EventLedgerLineDeleted  EventName = "model.ledgerline.deleted"
	EventSubaccountSaved    EventName = "model.subaccount.saved"
	EventAccountSaved       EventName = "model.account.saved"
	EventInvoiceSaved       EventName = "model.invoice.saved"
	EventInvoiceDeleted     EventName = "model.invoice.deleted"
	EventProductSaved       EventName = "model.product.saved"
	EventProductDeleted     EventName = "model.product.deleted"
	EventVariantSaved       EventName = "model.variant.saved"
	EventPurchaseDocUpdated EventName = "model.purchasedocument.updated"
)

var knownEventNames = map[EventName]bool{
	EventLedgerLineSaved:    true,
	EventLedgerLineDeleted:  true,
	EventSubaccountSaved:    true,
	EventAccountSaved:       true,
	EventInvoiceSaved:       true,
	EventInvoiceDeleted:     true,
	EventProductSaved:       true,
	EventProductDeleted:     true,
	EventVariantSaved:       true,
	EventPurchaseDocUpdated: true,
}

// ParseEventName validates a raw event name against the known set.
func ParseEventName(raw string) (EventName, error) {
	name := EventName(raw)
	if !knownEventNames[name] {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventName, raw)
	}
	return name, nil
}

// Event is an immutable notification that a domain action occurred. It
// carries the primary value of the triggering action (usually a key) and a
// named parameter bag, with an optional "previous" sub-bag holding
// pre-change field values for diffing.
type Event struct {
	name     EventName
	value    string
	params   map[string]string
	previous map[string]string
}

// EventOption configures an Event at construction time.
type EventOption func(*Event)

// WithParam attaches a named parameter.
func WithParam(key, value string) EventOption {
	return func(e *Event) {
		if e.params == nil {
			e.params = make(map[string]string)
		}
		e.params[key] = value
	}
}

// WithPrevious records the pre-change value of a field.
func WithPrevious(key, value string) EventOption {
	return func(e *Event) {
		if e.previous == nil {
			e.previous = make(map[string]string)
		}
		e.previous[key] = value
	}
}

// NewEvent creates an Event. Construction cannot fail; the envelope carries
// no behavior of its own.
func NewEvent(name EventName, value string, opts ...EventOption) Event {
	e := Event{name: name, value: value}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Name returns the event name.
func (e Event) Name() EventName { return e.name }

// Value returns the primary payload, usually the key of the affected row.
func (e Event) Value() string { return e.value }

// Param returns a named parameter, or the empty string when absent.
func (e Event) Param(key string) string { return e.params[key] }

// Previous returns the pre-change value of a field. The second return
// reports whether a previous value was recorded at all: an event without one
// means the emitter did not observe the field changing (row creation,
// deletion, or an emitter that does not diff).
func (e Event) Previous(key string) (string, bool) {
	v, ok := e.previous[key]
	return v, ok
}
