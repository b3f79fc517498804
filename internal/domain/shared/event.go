package shared

// DomainEvent is the base interface for all domain events.
// The event id is assigned when the event is created and doubles as the
// broker message id, so redeliveries can be deduplicated downstream.
type DomainEvent interface {
	ID() string
	Type() string
	AggregateID() string
}

// Aggregate is implemented by every aggregate root. Pending domain events
// accumulate on the aggregate and are drained into the outbox by the
// unit of work at commit time.
type Aggregate interface {
	ID() string
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// EventBuffer holds the pending domain events of an aggregate.
// It is embedded by aggregate roots; no global event bus exists.
type EventBuffer struct {
	events []DomainEvent
}

// Record appends a domain event to the buffer.
func (b *EventBuffer) Record(event DomainEvent) {
	b.events = append(b.events, event)
}

// DomainEvents returns the pending domain events.
func (b *EventBuffer) DomainEvents() []DomainEvent {
	return b.events
}

// ClearDomainEvents clears the buffer (called after a successful commit).
func (b *EventBuffer) ClearDomainEvents() {
	b.events = nil
}
