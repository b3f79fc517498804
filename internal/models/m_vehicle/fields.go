package m_vehicle

// Field name constants for the vehicles table.
const (
	TableName = "vehicles"

	VehicleID = "vehicle_id"
	ModelID   = "model_id"
	IsDeleted = "is_deleted"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)
