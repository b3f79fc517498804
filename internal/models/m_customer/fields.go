package m_customer

// Field name constants for the customers table.
const (
	TableName = "customers"

	CustomerID       = "customer_id"
	LevelID          = "level_id"
	IsCanBooking     = "is_can_booking"
	Categories       = "categories"
	Trips            = "trips"
	CanceledBookings = "canceled_bookings"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)
