package m_customer

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the customers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a customer.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			CustomerID,
			LevelID,
			IsCanBooking,
			Categories,
			Trips,
			CanceledBookings,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.CustomerID,
			data.LevelID,
			data.IsCanBooking,
			data.Categories,
			data.Trips,
			data.CanceledBookings,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific customer fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(customerID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, CustomerID)
	values = append(values, customerID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// ReadColumns returns the column names for reading customers.
func (m *Model) ReadColumns() []string {
	return []string{
		CustomerID,
		LevelID,
		IsCanBooking,
		Categories,
		Trips,
		CanceledBookings,
		CreatedAt,
		UpdatedAt,
	}
}
