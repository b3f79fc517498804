package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/inbox"
)

// InboxSaver persists inbound events before their offsets are committed.
type InboxSaver interface {
	Save(ctx context.Context, event *inbox.Event) (bool, error)
}

// ConsumerConfig configures one consumer group over the inbound topics.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
	Topics  []string

	// Kill switch: after FailureThreshold consecutive save failures the
	// consumer pauses for Cooldown before resuming.
	FailureThreshold int
	Cooldown         time.Duration
}

// Consumer reads inbound topics and stores every message in the inbox.
// Offsets are committed only after the message is durably saved, so a
// crash replays messages instead of losing them; the inbox dedups the
// replays by event id.
type Consumer struct {
	reader *kafka.Reader
	saver  InboxSaver
	logger *zap.Logger

	failureThreshold int
	cooldown         time.Duration
}

// NewConsumer creates a consumer for the configured topic group.
func NewConsumer(cfg ConsumerConfig, saver InboxSaver, logger *zap.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka consumer requires at least one broker")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka consumer requires a group id")
	}
	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("kafka consumer requires at least one topic")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: cfg.Topics,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})

	return &Consumer{
		reader:           reader,
		saver:            saver,
		logger:           logger,
		failureThreshold: cfg.FailureThreshold,
		cooldown:         cfg.Cooldown,
	}, nil
}

// Run consumes until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	consecutiveFailures := 0

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("fetch message", zap.Error(err))
			continue
		}

		event, err := messageToEvent(&msg)
		if err != nil {
			// Unidentifiable messages cannot be deduplicated; drop them
			// loudly rather than wedging the partition.
			c.logger.Error("drop message without event id",
				zap.String("topic", msg.Topic), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		saved, err := c.saver.Save(ctx, event)
		if err != nil {
			consecutiveFailures++
			c.logger.Error("save inbound event",
				zap.String("event_id", event.EventID),
				zap.String("topic", msg.Topic),
				zap.Int("consecutive_failures", consecutiveFailures),
				zap.Error(err))

			if c.failureThreshold > 0 && consecutiveFailures >= c.failureThreshold {
				c.logger.Warn("kill switch tripped, pausing consumer",
					zap.String("group", c.reader.Config().GroupID),
					zap.Duration("cooldown", c.cooldown))
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(c.cooldown):
				}
				consecutiveFailures = 0
			}
			continue
		}

		consecutiveFailures = 0
		if !saved {
			c.logger.Debug("duplicate inbound event",
				zap.String("event_id", event.EventID), zap.String("topic", msg.Topic))
		}
		c.commit(ctx, msg)
	}
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

func (c *Consumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
		c.logger.Error("commit offset", zap.String("topic", msg.Topic), zap.Error(err))
	}
}

// messageToEvent maps a broker message to an inbox event. The event id
// comes from the message-id header, falling back to the payload's
// event_id field.
func messageToEvent(msg *kafka.Message) (*inbox.Event, error) {
	eventID := ""
	for _, h := range msg.Headers {
		if h.Key == messageIDHeader {
			eventID = string(h.Value)
			break
		}
	}
	if eventID == "" {
		var envelope struct {
			EventID string `json:"event_id"`
		}
		if err := json.Unmarshal(msg.Value, &envelope); err != nil {
			return nil, fmt.Errorf("parse payload: %w", err)
		}
		eventID = envelope.EventID
	}
	if eventID == "" {
		return nil, fmt.Errorf("message carries no event id")
	}

	occurredOn := msg.Time
	if occurredOn.IsZero() {
		occurredOn = time.Now().UTC()
	}

	return &inbox.Event{
		EventID:    eventID,
		EventType:  msg.Topic,
		Content:    msg.Value,
		OccurredOn: occurredOn,
	}, nil
}
