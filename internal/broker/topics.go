// Package broker carries Kafka in and out: a producer used by the outbox
// relay and inbox-feeding consumers with a kill switch.
package broker

import (
	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
)

// Outbound topic names.
const (
	TopicBookingCreated         = "booking-created"
	TopicBookingCanceled        = "booking-canceled"
	TopicVehicleAddingProcessed = "vehicle-adding-processed"
)

// DefaultOutboundTopics maps outbox event types to the topics they are
// published on. BookingCompleted is deliberately absent: it only feeds
// the internal loyalty reaction and never leaves the service.
func DefaultOutboundTopics() map[string]string {
	return map[string]string{
		booking.EventTypeCreated:  TopicBookingCreated,
		booking.EventTypeCanceled: TopicBookingCanceled,
		vehicle.EventTypeAdded:    TopicVehicleAddingProcessed,
	}
}
