package m_vehicle

import (
	"time"
)

// Data represents the database model for the vehicles table.
type Data struct {
	VehicleID string    `spanner:"vehicle_id"`
	ModelID   string    `spanner:"model_id"`
	IsDeleted bool      `spanner:"is_deleted"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
