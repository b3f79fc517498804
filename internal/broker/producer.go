package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageIDHeader carries the event id so downstream consumers can dedup
// without parsing the payload.
const messageIDHeader = "message-id"

// Producer publishes outbox events to Kafka. A single writer serves all
// topics; the topic is set per message.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a Producer against the given brokers.
func NewProducer(brokers []string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka producer requires at least one broker")
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
	}, nil
}

// Publish writes one message and waits for full acknowledgment. The key
// keeps events of one aggregate on one partition, preserving their order.
func (p *Producer) Publish(ctx context.Context, topic, key, messageID string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: messageIDHeader, Value: []byte(messageID)},
		},
		Time: time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
