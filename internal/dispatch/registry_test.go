package dispatch

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()

	var got json.RawMessage
	r.Register("some-event", func(_ context.Context, content json.RawMessage) error {
		got = content
		return nil
	})

	err := r.Dispatch(context.Background(), "some-event", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(got))
}

func TestRegistry_Dispatch_UnknownType(t *testing.T) {
	r := NewRegistry()

	err := r.Dispatch(context.Background(), "mystery-event", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery-event")
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := NewRegistry()
	noop := func(context.Context, json.RawMessage) error { return nil }

	r.Register("some-event", noop)
	assert.Panics(t, func() {
		r.Register("some-event", noop)
	})
}

func TestRegistry_ValidateTotal(t *testing.T) {
	r := NewRegistry()
	noop := func(context.Context, json.RawMessage) error { return nil }

	for _, eventType := range InboundTypes() {
		r.Register(eventType, noop)
	}

	assert.NoError(t, r.ValidateTotal(InboundTypes()))
}

func TestRegistry_ValidateTotal_MissingHandler(t *testing.T) {
	r := NewRegistry()
	noop := func(context.Context, json.RawMessage) error { return nil }

	for _, eventType := range InboundTypes()[1:] {
		r.Register(eventType, noop)
	}

	err := r.ValidateTotal(InboundTypes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), InboundTypes()[0])
}

func TestInboundTypes_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, eventType := range InboundTypes() {
		assert.False(t, seen[eventType], "duplicate inbound type %s", eventType)
		seen[eventType] = true
	}
	assert.Len(t, seen, 8)
}
