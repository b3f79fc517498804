package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/outbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

type fakeOutboxSource struct {
	events    []*outbox.Event
	processed []string
	markErr   error
}

func (f *fakeOutboxSource) Pending(_ context.Context, limit int64) ([]*outbox.Event, error) {
	if int64(len(f.events)) > limit {
		return f.events[:limit], nil
	}
	return f.events, nil
}

func (f *fakeOutboxSource) MarkProcessed(_ context.Context, eventID string, _ time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.processed = append(f.processed, eventID)
	return nil
}

type published struct {
	topic     string
	key       string
	messageID string
}

type fakePublisher struct {
	messages []published
	failOn   string
}

func (f *fakePublisher) Publish(_ context.Context, topic, key, messageID string, _ []byte) error {
	if f.failOn != "" && messageID == f.failOn {
		return errors.New("broker unavailable")
	}
	f.messages = append(f.messages, published{topic: topic, key: key, messageID: messageID})
	return nil
}

func outboxEvent(id, eventType, bookingID string, occurred time.Time) *outbox.Event {
	content, _ := json.Marshal(map[string]string{
		"event_id":   id,
		"booking_id": bookingID,
	})
	return &outbox.Event{
		EventID:    id,
		EventType:  eventType,
		Content:    content,
		OccurredOn: occurred,
	}
}

func newTestRelay(source *fakeOutboxSource, publisher *fakePublisher, reactions map[string]Reaction) *Relay {
	return NewRelay(
		source,
		publisher,
		map[string]string{
			booking.EventTypeCreated:  "booking-created",
			booking.EventTypeCanceled: "booking-canceled",
		},
		reactions,
		clock.NewMockClock(time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)),
		zap.NewNop(),
		time.Second,
		30,
	)
}

func TestRelay_PublishesInOrder(t *testing.T) {
	base := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	source := &fakeOutboxSource{events: []*outbox.Event{
		outboxEvent("ev-1", booking.EventTypeCreated, "b-1", base),
		outboxEvent("ev-2", booking.EventTypeCanceled, "b-1", base.Add(time.Second)),
		outboxEvent("ev-3", booking.EventTypeCreated, "b-2", base.Add(2*time.Second)),
	}}
	publisher := &fakePublisher{}

	relay := newTestRelay(source, publisher, nil)
	require.NoError(t, relay.RunOnce(context.Background()))

	require.Len(t, publisher.messages, 3)
	assert.Equal(t, "ev-1", publisher.messages[0].messageID)
	assert.Equal(t, "ev-2", publisher.messages[1].messageID)
	assert.Equal(t, "ev-3", publisher.messages[2].messageID)
	assert.Equal(t, "booking-canceled", publisher.messages[1].topic)
	assert.Equal(t, "b-1", publisher.messages[1].key, "partition key is the aggregate id")
	assert.Equal(t, []string{"ev-1", "ev-2", "ev-3"}, source.processed)
}

func TestRelay_StopsOnPublishFailure(t *testing.T) {
	base := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	source := &fakeOutboxSource{events: []*outbox.Event{
		outboxEvent("ev-1", booking.EventTypeCreated, "b-1", base),
		outboxEvent("ev-2", booking.EventTypeCreated, "b-2", base.Add(time.Second)),
		outboxEvent("ev-3", booking.EventTypeCreated, "b-3", base.Add(2*time.Second)),
	}}
	publisher := &fakePublisher{failOn: "ev-2"}

	relay := newTestRelay(source, publisher, nil)
	err := relay.RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ev-2")

	// ev-1 went through, ev-2 failed, ev-3 must not be overtaken.
	assert.Equal(t, []string{"ev-1"}, source.processed)
	require.Len(t, publisher.messages, 1)
	assert.Equal(t, "ev-1", publisher.messages[0].messageID)
}

func TestRelay_ReactionWithoutTopic(t *testing.T) {
	base := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	source := &fakeOutboxSource{events: []*outbox.Event{
		outboxEvent("ev-1", booking.EventTypeCompleted, "b-1", base),
	}}
	publisher := &fakePublisher{}

	var reacted []string
	reactions := map[string]Reaction{
		booking.EventTypeCompleted: func(_ context.Context, content json.RawMessage) error {
			var envelope struct {
				BookingID string `json:"booking_id"`
			}
			require.NoError(t, json.Unmarshal(content, &envelope))
			reacted = append(reacted, envelope.BookingID)
			return nil
		},
	}

	relay := newTestRelay(source, publisher, reactions)
	require.NoError(t, relay.RunOnce(context.Background()))

	assert.Empty(t, publisher.messages, "completed events are not published")
	assert.Equal(t, []string{"b-1"}, reacted)
	assert.Equal(t, []string{"ev-1"}, source.processed)
}

func TestRelay_ReactionFailureLeavesRowPending(t *testing.T) {
	base := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	source := &fakeOutboxSource{events: []*outbox.Event{
		outboxEvent("ev-1", booking.EventTypeCanceled, "b-1", base),
	}}
	publisher := &fakePublisher{}

	reactions := map[string]Reaction{
		booking.EventTypeCanceled: func(context.Context, json.RawMessage) error {
			return fmt.Errorf("customer store down")
		},
	}

	relay := newTestRelay(source, publisher, reactions)
	err := relay.RunOnce(context.Background())
	require.Error(t, err)

	// Published but not marked processed: the next run publishes again and
	// downstream dedups by message id.
	require.Len(t, publisher.messages, 1)
	assert.Empty(t, source.processed)
}

func TestRelay_UnroutedEventIsStillSettled(t *testing.T) {
	base := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	source := &fakeOutboxSource{events: []*outbox.Event{
		outboxEvent("ev-1", "some.internal", "b-1", base),
	}}
	publisher := &fakePublisher{}

	relay := newTestRelay(source, publisher, nil)
	require.NoError(t, relay.RunOnce(context.Background()))

	assert.Empty(t, publisher.messages)
	assert.Equal(t, []string{"ev-1"}, source.processed)
}
