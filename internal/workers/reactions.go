package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/booking-service/internal/app/customer/usecases/record_canceled_booking"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/record_trip"
	"github.com/light-bringer/booking-service/internal/domain/booking"
)

// LoyaltyReactions binds booking lifecycle events to the customer loyalty
// counters: a completed booking records a trip, a canceled one records a
// cancellation. Both may move the loyalty level.
func LoyaltyReactions(
	trips *record_trip.Interactor,
	cancellations *record_canceled_booking.Interactor,
) map[string]Reaction {
	return map[string]Reaction{
		booking.EventTypeCompleted: func(ctx context.Context, content json.RawMessage) error {
			var event booking.CompletedEvent
			if err := json.Unmarshal(content, &event); err != nil {
				return fmt.Errorf("decode completed event: %w", err)
			}
			return trips.Execute(ctx, &record_trip.Request{CustomerID: event.CustomerID})
		},
		booking.EventTypeCanceled: func(ctx context.Context, content json.RawMessage) error {
			var event booking.CanceledEvent
			if err := json.Unmarshal(content, &event); err != nil {
				return fmt.Errorf("decode canceled event: %w", err)
			}
			return cancellations.Execute(ctx, &record_canceled_booking.Request{CustomerID: event.CustomerID})
		},
	}
}
