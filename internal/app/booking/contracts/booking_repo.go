package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/booking-service/internal/domain/booking"
)

// BookingRepository defines the interface for booking persistence.
// Repositories return mutations, they don't apply them; usecases collect
// everything into one commit plan.
type BookingRepository interface {
	// InsertMut creates a mutation for inserting a new booking.
	InsertMut(b *booking.Booking) *spanner.Mutation

	// UpdateMut creates a mutation covering only dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(b *booking.Booking) *spanner.Mutation

	// GetByID retrieves a booking by ID, reconstructing the aggregate.
	GetByID(ctx context.Context, bookingID string) (*booking.Booking, error)

	// HasLiveBooking reports whether the customer already has an
	// InProcess or Booked booking for the vehicle.
	HasLiveBooking(ctx context.Context, customerID, vehicleID string) (bool, error)

	// ListFreeWaitExpired retrieves booked bookings whose free-wait window
	// elapsed at or before now, oldest first, capped at limit.
	ListFreeWaitExpired(ctx context.Context, now time.Time, limit int64) ([]*booking.Booking, error)
}
