package m_booking

// Field name constants for the bookings table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "bookings"

	BookingID       = "booking_id"
	CustomerID      = "customer_id"
	VehicleID       = "vehicle_id"
	StatusID        = "status_id"
	FreeWaitSeconds = "free_wait_seconds"
	StartOn         = "start_on"
	EndOn           = "end_on"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)
