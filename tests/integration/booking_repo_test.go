//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/app/booking/repo"
	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/tests/testutil"
)

func newDomainBooking(t *testing.T, customerID, vehicleID string) *booking.Booking {
	t.Helper()

	categories, err := shared.NewCategories([]string{"B"})
	require.NoError(t, err)
	cust, err := customer.NewCustomer(customerID, categories)
	require.NoError(t, err)

	model, err := vehicle.NewModel("model-1", shared.CategoryB)
	require.NoError(t, err)

	b, err := booking.NewBooking(cust, model, vehicleID)
	require.NoError(t, err)
	return b
}

func TestBookingRepository_InsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewBookingRepo(client)

	customerID := testutil.CreateTestCustomer(t, client)
	modelID := testutil.CreateTestModel(t, client, "B")
	vehicleID := testutil.CreateTestVehicle(t, client, modelID)

	b := newDomainBooking(t, customerID, vehicleID)
	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(b)})
	require.NoError(t, err)

	retrieved, err := repository.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, customerID, retrieved.CustomerID())
	assert.Equal(t, vehicleID, retrieved.VehicleID())
	assert.Equal(t, booking.StatusInProcess, retrieved.Status())
	assert.Nil(t, retrieved.Start())
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	_, err := repo.NewBookingRepo(client).GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestBookingRepository_HasLiveBooking(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewBookingRepo(client)

	customerID := testutil.CreateTestCustomer(t, client)
	modelID := testutil.CreateTestModel(t, client, "B")
	vehicleID := testutil.CreateTestVehicle(t, client, modelID)

	// Finished bookings are not live.
	testutil.CreateTestBooking(t, client, customerID, vehicleID, 4, nil)
	live, err := repository.HasLiveBooking(ctx, customerID, vehicleID)
	require.NoError(t, err)
	assert.False(t, live)

	now := time.Now().UTC()
	testutil.CreateTestBooking(t, client, customerID, vehicleID, 3, &now)
	live, err = repository.HasLiveBooking(ctx, customerID, vehicleID)
	require.NoError(t, err)
	assert.True(t, live)
}

func TestBookingRepository_ListFreeWaitExpired(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewBookingRepo(client)

	customerID := testutil.CreateTestCustomer(t, client)
	modelID := testutil.CreateTestModel(t, client, "B")
	vehicleID := testutil.CreateTestVehicle(t, client, modelID)

	now := time.Now().UTC()
	staleStart := now.Add(-10 * time.Minute)
	freshStart := now.Add(-1 * time.Minute)

	expiredID := testutil.CreateTestBooking(t, client, customerID, vehicleID, 3, &staleStart)
	testutil.CreateTestBooking(t, client, customerID, vehicleID, 3, &freshStart)
	testutil.CreateTestBooking(t, client, customerID, vehicleID, 5, &staleStart)

	expired, err := repository.ListFreeWaitExpired(ctx, now, 30)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, expiredID, expired[0].ID())
}
