package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/models/m_booking"
	"github.com/light-bringer/booking-service/internal/models/m_customer"
	"github.com/light-bringer/booking-service/internal/models/m_outbox"
	"github.com/light-bringer/booking-service/internal/models/m_vehicle"
	"github.com/light-bringer/booking-service/internal/models/m_vehicle_model"
)

// CreateTestCustomer creates a standard-level customer with booking rights
// and a "B" license category.
func CreateTestCustomer(t *testing.T, client *spanner.Client) string {
	t.Helper()

	customerID := uuid.New().String()
	apply(t, client, m_customer.NewModel().InsertMut(&m_customer.Data{
		CustomerID:       customerID,
		LevelID:          1,
		IsCanBooking:     true,
		Categories:       []string{"B"},
		Trips:            0,
		CanceledBookings: 0,
	}))
	return customerID
}

// CreateTestModel creates a vehicle model with the given category.
func CreateTestModel(t *testing.T, client *spanner.Client, category string) string {
	t.Helper()

	modelID := uuid.New().String()
	apply(t, client, m_vehicle_model.NewModel().InsertMut(&m_vehicle_model.Data{
		ModelID:  modelID,
		Category: category,
	}))
	return modelID
}

// CreateTestVehicle creates a live vehicle referencing the given model.
func CreateTestVehicle(t *testing.T, client *spanner.Client, modelID string) string {
	t.Helper()

	vehicleID := uuid.New().String()
	apply(t, client, m_vehicle.NewModel().InsertMut(&m_vehicle.Data{
		VehicleID: vehicleID,
		ModelID:   modelID,
		IsDeleted: false,
	}))
	return vehicleID
}

// CreateTestBooking creates a booking row in the given status. The start
// timestamp is only set for booked and later states.
func CreateTestBooking(t *testing.T, client *spanner.Client, customerID, vehicleID string, statusID int64, startOn *time.Time) string {
	t.Helper()

	bookingID := uuid.New().String()
	apply(t, client, m_booking.NewModel().InsertMut(&m_booking.Data{
		BookingID:       bookingID,
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		StatusID:        statusID,
		FreeWaitSeconds: 300,
		StartOn:         nullTime(startOn),
		EndOn:           spanner.NullTime{},
	}))
	return bookingID
}

// CreateOutboxEvent stores a pending outbox row.
func CreateOutboxEvent(t *testing.T, client *spanner.Client, eventType string, content map[string]interface{}, occurredOn time.Time) string {
	t.Helper()

	eventID := uuid.New().String()
	apply(t, client, m_outbox.NewModel().InsertMut(&m_outbox.Data{
		EventID:    eventID,
		EventType:  eventType,
		Content:    spanner.NullJSON{Value: content, Valid: true},
		OccurredOn: occurredOn,
	}))
	return eventID
}

func apply(t *testing.T, client *spanner.Client, mut *spanner.Mutation) {
	t.Helper()

	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to apply fixture mutation")
}

func nullTime(ts *time.Time) spanner.NullTime {
	if ts == nil {
		return spanner.NullTime{}
	}
	return spanner.NullTime{Time: *ts, Valid: true}
}
