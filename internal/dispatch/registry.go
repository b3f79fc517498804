package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Handler consumes the JSON content of one stored inbound event.
type Handler func(ctx context.Context, content json.RawMessage) error

// Registry is the closed mapping from inbound event type to handler.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to an event type. Registering the same type
// twice panics: it is always a wiring bug.
func (r *Registry) Register(eventType string, h Handler) {
	if _, exists := r.handlers[eventType]; exists {
		panic(fmt.Sprintf("dispatch: handler for %q registered twice", eventType))
	}
	r.handlers[eventType] = h
}

// Resolve looks up the handler for an event type.
func (r *Registry) Resolve(eventType string) (Handler, bool) {
	h, ok := r.handlers[eventType]
	return h, ok
}

// Dispatch routes one event to its handler.
func (r *Registry) Dispatch(ctx context.Context, eventType string, content json.RawMessage) error {
	h, ok := r.handlers[eventType]
	if !ok {
		return fmt.Errorf("dispatch: no handler for event type %q", eventType)
	}
	return h(ctx, content)
}

// Types returns the registered event types in stable order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidateTotal verifies that every expected event type has a handler.
// Called at startup so a missed binding fails boot, not a message.
func (r *Registry) ValidateTotal(expected []string) error {
	for _, t := range expected {
		if _, ok := r.handlers[t]; !ok {
			return fmt.Errorf("dispatch: no handler registered for event type %q", t)
		}
	}
	return nil
}
