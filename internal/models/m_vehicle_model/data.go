package m_vehicle_model

import (
	"time"
)

// Data represents the database model for the vehicle_models table.
type Data struct {
	ModelID   string    `spanner:"model_id"`
	Category  string    `spanner:"category"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
