package workers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/inbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

type fakeInboxSource struct {
	events    []*inbox.Event
	processed []string
}

func (f *fakeInboxSource) Pending(_ context.Context, limit int64) ([]*inbox.Event, error) {
	if int64(len(f.events)) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func (f *fakeInboxSource) MarkProcessed(_ context.Context, eventID string, _ time.Time) error {
	f.processed = append(f.processed, eventID)
	return nil
}

type fakeDispatcher struct {
	dispatched []string
	failOn     string
}

func (f *fakeDispatcher) Dispatch(_ context.Context, eventType string, _ json.RawMessage) error {
	if eventType == f.failOn {
		return errors.New("handler failed")
	}
	f.dispatched = append(f.dispatched, eventType)
	return nil
}

func inboxEvent(id, eventType string) *inbox.Event {
	return &inbox.Event{
		EventID:    id,
		EventType:  eventType,
		Content:    json.RawMessage(`{}`),
		OccurredOn: time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC),
	}
}

func newTestDrainer(source *fakeInboxSource, dispatcher *fakeDispatcher) *Drainer {
	return NewDrainer(source, dispatcher, clock.NewRealClock(), zap.NewNop(), time.Second, 30)
}

func TestDrainer_DispatchesAndSettles(t *testing.T) {
	source := &fakeInboxSource{events: []*inbox.Event{
		inboxEvent("ev-1", "model-created"),
		inboxEvent("ev-2", "vehicle-added"),
	}}
	dispatcher := &fakeDispatcher{}

	require.NoError(t, newTestDrainer(source, dispatcher).RunOnce(context.Background()))

	assert.Equal(t, []string{"model-created", "vehicle-added"}, dispatcher.dispatched)
	assert.Equal(t, []string{"ev-1", "ev-2"}, source.processed)
}

func TestDrainer_FailedRowDoesNotBlockOthers(t *testing.T) {
	source := &fakeInboxSource{events: []*inbox.Event{
		inboxEvent("ev-1", "model-created"),
		inboxEvent("ev-2", "driving-license-approved"),
		inboxEvent("ev-3", "vehicle-added"),
	}}
	dispatcher := &fakeDispatcher{failOn: "driving-license-approved"}

	require.NoError(t, newTestDrainer(source, dispatcher).RunOnce(context.Background()))

	// The failed row stays pending for the next run; its neighbors are
	// independent commands and proceed.
	assert.Equal(t, []string{"model-created", "vehicle-added"}, dispatcher.dispatched)
	assert.Equal(t, []string{"ev-1", "ev-3"}, source.processed)
}

func TestDrainer_BatchCap(t *testing.T) {
	source := &fakeInboxSource{}
	for i := 0; i < 40; i++ {
		source.events = append(source.events, inboxEvent(
			string(rune('a'+i%26))+"-ev", "model-created"))
	}
	dispatcher := &fakeDispatcher{}

	require.NoError(t, newTestDrainer(source, dispatcher).RunOnce(context.Background()))
	assert.Len(t, dispatcher.dispatched, 30)
}
