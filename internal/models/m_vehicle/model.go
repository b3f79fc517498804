package m_vehicle

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the vehicles table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a vehicle.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			VehicleID,
			ModelID,
			IsDeleted,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.VehicleID,
			data.ModelID,
			data.IsDeleted,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific vehicle fields.
func (m *Model) UpdateMut(vehicleID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, VehicleID)
	values = append(values, vehicleID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// ReadColumns returns the column names for reading vehicles.
func (m *Model) ReadColumns() []string {
	return []string{
		VehicleID,
		ModelID,
		IsDeleted,
		CreatedAt,
		UpdatedAt,
	}
}
