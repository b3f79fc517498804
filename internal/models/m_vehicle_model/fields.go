package m_vehicle_model

// Field name constants for the vehicle_models table.
const (
	TableName = "vehicle_models"

	ModelID   = "model_id"
	Category  = "category"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)
