package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/outbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

// OutboxSource supplies pending outbox rows and settles processed ones.
type OutboxSource interface {
	Pending(ctx context.Context, limit int64) ([]*outbox.Event, error)
	MarkProcessed(ctx context.Context, eventID string, processedOn time.Time) error
}

// Publisher delivers one event payload to a broker topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key, messageID string, payload []byte) error
}

// Reaction is the in-process side effect of an outbox event, e.g. the
// loyalty counters moving when a booking completes.
type Reaction func(ctx context.Context, content json.RawMessage) error

// Relay polls the outbox and, per event type, publishes to an optional
// broker topic and runs an optional internal reaction. A row is marked
// processed only after both succeeded; on the first failure the run stops
// so older events are never overtaken by newer ones.
type Relay struct {
	source    OutboxSource
	publisher Publisher
	topics    map[string]string
	reactions map[string]Reaction
	clock     clock.Clock
	logger    *zap.Logger

	interval  time.Duration
	batchSize int64
}

// NewRelay creates an outbox relay.
func NewRelay(
	source OutboxSource,
	publisher Publisher,
	topics map[string]string,
	reactions map[string]Reaction,
	clk clock.Clock,
	logger *zap.Logger,
	interval time.Duration,
	batchSize int64,
) *Relay {
	return &Relay{
		source:    source,
		publisher: publisher,
		topics:    topics,
		reactions: reactions,
		clock:     clk,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run polls until the context is canceled.
func (r *Relay) Run(ctx context.Context) {
	runLoop(ctx, "outbox-relay", r.interval, r.logger, r.RunOnce)
}

// RunOnce relays one batch in occurrence order.
func (r *Relay) RunOnce(ctx context.Context) error {
	events, err := r.source.Pending(ctx, r.batchSize)
	if err != nil {
		return fmt.Errorf("load pending outbox events: %w", err)
	}

	for _, event := range events {
		if err := r.relay(ctx, event); err != nil {
			// Leave this row and everything after it for the next run.
			return fmt.Errorf("relay event %s (%s): %w", event.EventID, event.EventType, err)
		}
	}
	return nil
}

func (r *Relay) relay(ctx context.Context, event *outbox.Event) error {
	if topic, ok := r.topics[event.EventType]; ok {
		key := partitionKey(event)
		if err := r.publisher.Publish(ctx, topic, key, event.EventID, event.Content); err != nil {
			return fmt.Errorf("publish to %s: %w", topic, err)
		}
	}

	if reaction, ok := r.reactions[event.EventType]; ok {
		if err := reaction(ctx, event.Content); err != nil {
			return fmt.Errorf("reaction: %w", err)
		}
	}

	if err := r.source.MarkProcessed(ctx, event.EventID, r.clock.Now()); err != nil {
		return err
	}

	r.logger.Debug("event relayed",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType))
	return nil
}

// partitionKey picks the aggregate id out of the payload so all events of
// one aggregate share a partition. Falls back to the event id.
func partitionKey(event *outbox.Event) string {
	var envelope struct {
		BookingID string `json:"booking_id"`
		VehicleID string `json:"vehicle_id"`
	}
	if err := json.Unmarshal(event.Content, &envelope); err == nil {
		if envelope.BookingID != "" {
			return envelope.BookingID
		}
		if envelope.VehicleID != "" {
			return envelope.VehicleID
		}
	}
	return event.EventID
}
