package book_vehicle

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/models/m_booking"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

type fakeBookings struct {
	hasLive bool
}

func (f *fakeBookings) InsertMut(b *booking.Booking) *spanner.Mutation {
	return m_booking.NewModel().InsertMut(&m_booking.Data{BookingID: b.ID()})
}

func (f *fakeBookings) UpdateMut(*booking.Booking) *spanner.Mutation { return nil }

func (f *fakeBookings) GetByID(context.Context, string) (*booking.Booking, error) {
	return nil, shared.ErrNotFound
}

func (f *fakeBookings) HasLiveBooking(context.Context, string, string) (bool, error) {
	return f.hasLive, nil
}

func (f *fakeBookings) ListFreeWaitExpired(context.Context, time.Time, int64) ([]*booking.Booking, error) {
	return nil, nil
}

type fakeCustomers struct {
	customer *customer.Customer
}

func (f *fakeCustomers) InsertMut(*customer.Customer) *spanner.Mutation { return nil }
func (f *fakeCustomers) UpdateMut(*customer.Customer) *spanner.Mutation { return nil }

func (f *fakeCustomers) GetByID(context.Context, string) (*customer.Customer, error) {
	if f.customer == nil {
		return nil, shared.NotFound("customer not found")
	}
	return f.customer, nil
}

type fakeVehicles struct {
	vehicle *vehicle.Vehicle
}

func (f *fakeVehicles) InsertMut(*vehicle.Vehicle) *spanner.Mutation { return nil }
func (f *fakeVehicles) UpdateMut(*vehicle.Vehicle) *spanner.Mutation { return nil }

func (f *fakeVehicles) GetByID(context.Context, string) (*vehicle.Vehicle, error) {
	if f.vehicle == nil {
		return nil, shared.NotFound("vehicle not found")
	}
	return f.vehicle, nil
}

type fakeModels struct {
	model *vehicle.Model
}

func (f *fakeModels) InsertMut(*vehicle.Model) *spanner.Mutation { return nil }
func (f *fakeModels) UpdateMut(*vehicle.Model) *spanner.Mutation { return nil }

func (f *fakeModels) GetByID(context.Context, string) (*vehicle.Model, error) {
	if f.model == nil {
		return nil, shared.NotFound("model not found")
	}
	return f.model, nil
}

type recordingApplier struct {
	plans []*committer.CommitPlan
}

func (a *recordingApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	a.plans = append(a.plans, plan)
	return nil
}

func standardCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	categories, err := shared.NewCategories([]string{"B"})
	require.NoError(t, err)
	cust, err := customer.NewCustomer("cust-1", categories)
	require.NoError(t, err)
	cust.ClearDomainEvents()
	return cust
}

func newTestInteractor(
	bookings *fakeBookings,
	customers *fakeCustomers,
	vehicles *fakeVehicles,
	models *fakeModels,
	applier *recordingApplier,
) *Interactor {
	clk := clock.NewMockClock(time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC))
	return NewInteractor(bookings, customers, vehicles, models, applier, clk)
}

func TestExecute_BooksVehicle(t *testing.T) {
	applier := &recordingApplier{}
	interactor := newTestInteractor(
		&fakeBookings{},
		&fakeCustomers{customer: standardCustomer(t)},
		&fakeVehicles{vehicle: vehicle.ReconstructVehicle("v-1", "m-1", false)},
		&fakeModels{model: vehicle.ReconstructModel("m-1", shared.CategoryB)},
		applier,
	)

	bookingID, err := interactor.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		VehicleID:  "v-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, bookingID)

	// One commit carrying the booking insert and its created event.
	require.Len(t, applier.plans, 1)
	assert.Equal(t, 2, applier.plans[0].Count())
}

func TestExecute_RejectsDuplicateLiveBooking(t *testing.T) {
	applier := &recordingApplier{}
	interactor := newTestInteractor(
		&fakeBookings{hasLive: true},
		&fakeCustomers{customer: standardCustomer(t)},
		&fakeVehicles{vehicle: vehicle.ReconstructVehicle("v-1", "m-1", false)},
		&fakeModels{model: vehicle.ReconstructModel("m-1", shared.CategoryB)},
		applier,
	)

	_, err := interactor.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		VehicleID:  "v-1",
	})
	assert.ErrorIs(t, err, shared.ErrConflict)
	assert.Empty(t, applier.plans)
}

func TestExecute_DeletedVehicleIsNotFound(t *testing.T) {
	applier := &recordingApplier{}
	interactor := newTestInteractor(
		&fakeBookings{},
		&fakeCustomers{customer: standardCustomer(t)},
		&fakeVehicles{vehicle: vehicle.ReconstructVehicle("v-1", "m-1", true)},
		&fakeModels{model: vehicle.ReconstructModel("m-1", shared.CategoryB)},
		applier,
	)

	_, err := interactor.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		VehicleID:  "v-1",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestExecute_MissingModelIsConsistencyViolation(t *testing.T) {
	applier := &recordingApplier{}
	interactor := newTestInteractor(
		&fakeBookings{},
		&fakeCustomers{customer: standardCustomer(t)},
		&fakeVehicles{vehicle: vehicle.ReconstructVehicle("v-1", "m-1", false)},
		&fakeModels{},
		applier,
	)

	_, err := interactor.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		VehicleID:  "v-1",
	})
	assert.ErrorIs(t, err, shared.ErrDataConsistencyViolation)
}

func TestExecute_CategoryMismatchIsRuleViolation(t *testing.T) {
	applier := &recordingApplier{}
	interactor := newTestInteractor(
		&fakeBookings{},
		&fakeCustomers{customer: standardCustomer(t)},
		&fakeVehicles{vehicle: vehicle.ReconstructVehicle("v-1", "m-1", false)},
		&fakeModels{model: vehicle.ReconstructModel("m-1", shared.CategoryC)},
		applier,
	)

	_, err := interactor.Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		VehicleID:  "v-1",
	})
	assert.ErrorIs(t, err, shared.ErrDomainRuleViolation)
}
