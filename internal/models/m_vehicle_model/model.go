package m_vehicle_model

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the vehicle_models table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a vehicle model.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			ModelID,
			Category,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.ModelID,
			data.Category,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific model fields.
func (m *Model) UpdateMut(modelID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ModelID)
	values = append(values, modelID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// ReadColumns returns the column names for reading vehicle models.
func (m *Model) ReadColumns() []string {
	return []string{
		ModelID,
		Category,
		CreatedAt,
		UpdatedAt,
	}
}
