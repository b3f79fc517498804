package m_booking

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the bookings table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a booking.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			BookingID,
			CustomerID,
			VehicleID,
			StatusID,
			FreeWaitSeconds,
			StartOn,
			EndOn,
			CreatedAt,
			UpdatedAt,
		},
		[]interface{}{
			data.BookingID,
			data.CustomerID,
			data.VehicleID,
			data.StatusID,
			data.FreeWaitSeconds,
			data.StartOn,
			data.EndOn,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific booking fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(bookingID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, BookingID)
	values = append(values, bookingID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// ReadColumns returns the column names for reading bookings.
func (m *Model) ReadColumns() []string {
	return []string{
		BookingID,
		CustomerID,
		VehicleID,
		StatusID,
		FreeWaitSeconds,
		StartOn,
		EndOn,
		CreatedAt,
		UpdatedAt,
	}
}
