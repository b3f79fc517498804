package m_customer

import (
	"time"
)

// Data represents the database model for the customers table.
type Data struct {
	CustomerID       string    `spanner:"customer_id"`
	LevelID          int64     `spanner:"level_id"`
	IsCanBooking     bool      `spanner:"is_can_booking"`
	Categories       []string  `spanner:"categories"`
	Trips            int64     `spanner:"trips"`
	CanceledBookings int64     `spanner:"canceled_bookings"`
	CreatedAt        time.Time `spanner:"created_at"`
	UpdatedAt        time.Time `spanner:"updated_at"`
}
