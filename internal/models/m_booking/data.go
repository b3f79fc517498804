package m_booking

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the bookings table.
type Data struct {
	BookingID       string           `spanner:"booking_id"`
	CustomerID      string           `spanner:"customer_id"`
	VehicleID       string           `spanner:"vehicle_id"`
	StatusID        int64            `spanner:"status_id"`
	FreeWaitSeconds int64            `spanner:"free_wait_seconds"`
	StartOn         spanner.NullTime `spanner:"start_on"`
	EndOn           spanner.NullTime `spanner:"end_on"`
	CreatedAt       time.Time        `spanner:"created_at"`
	UpdatedAt       time.Time        `spanner:"updated_at"`
}
