package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/inbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

// InboxSource supplies pending inbox rows and settles processed ones.
type InboxSource interface {
	Pending(ctx context.Context, limit int64) ([]*inbox.Event, error)
	MarkProcessed(ctx context.Context, eventID string, processedOn time.Time) error
}

// Dispatcher routes one stored event to its command handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, eventType string, content json.RawMessage) error
}

// Drainer polls the inbox and dispatches stored events to their command
// handlers. Unlike the relay, rows are independent commands: a failing
// row is logged and left pending while the rest of the batch proceeds.
type Drainer struct {
	source     InboxSource
	dispatcher Dispatcher
	clock      clock.Clock
	logger     *zap.Logger

	interval  time.Duration
	batchSize int64
}

// NewDrainer creates an inbox drainer.
func NewDrainer(
	source InboxSource,
	dispatcher Dispatcher,
	clk clock.Clock,
	logger *zap.Logger,
	interval time.Duration,
	batchSize int64,
) *Drainer {
	return &Drainer{
		source:     source,
		dispatcher: dispatcher,
		clock:      clk,
		logger:     logger,
		interval:   interval,
		batchSize:  batchSize,
	}
}

// Run polls until the context is canceled.
func (d *Drainer) Run(ctx context.Context) {
	runLoop(ctx, "inbox-drainer", d.interval, d.logger, d.RunOnce)
}

// RunOnce dispatches one batch of pending inbound events.
func (d *Drainer) RunOnce(ctx context.Context) error {
	events, err := d.source.Pending(ctx, d.batchSize)
	if err != nil {
		return fmt.Errorf("load pending inbox events: %w", err)
	}

	for _, event := range events {
		if err := d.dispatcher.Dispatch(ctx, event.EventType, event.Content); err != nil {
			d.logger.Error("dispatch inbound event",
				zap.String("event_id", event.EventID),
				zap.String("event_type", event.EventType),
				zap.Error(err))
			continue
		}

		if err := d.source.MarkProcessed(ctx, event.EventID, d.clock.Now()); err != nil {
			d.logger.Error("mark inbound event processed",
				zap.String("event_id", event.EventID),
				zap.Error(err))
		}
	}
	return nil
}
