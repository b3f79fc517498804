package book_vehicle

import (
	"context"
	"errors"
	"fmt"

	bookingcontracts "github.com/light-bringer/booking-service/internal/app/booking/contracts"
	customercontracts "github.com/light-bringer/booking-service/internal/app/customer/contracts"
	vehiclecontracts "github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the data needed to book a vehicle.
type Request struct {
	CustomerID string
	VehicleID  string
}

// Interactor handles the book vehicle use case.
type Interactor struct {
	bookings  bookingcontracts.BookingRepository
	customers customercontracts.CustomerRepository
	vehicles  vehiclecontracts.VehicleRepository
	models    vehiclecontracts.ModelRepository
	applier   committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new book vehicle interactor.
func NewInteractor(
	bookings bookingcontracts.BookingRepository,
	customers customercontracts.CustomerRepository,
	vehicles vehiclecontracts.VehicleRepository,
	models vehiclecontracts.ModelRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		bookings:  bookings,
		customers: customers,
		vehicles:  vehicles,
		models:    models,
		applier:   applier,
		clock:     clk,
	}
}

// Execute books a vehicle for a customer. The new booking starts
// InProcess; the occupation result moves it to Booked or NotBooked later.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	cust, err := i.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return "", err
	}

	v, err := i.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return "", err
	}
	if v.IsDeleted() {
		return "", shared.NotFound(fmt.Sprintf("vehicle %s is deleted", v.ID()))
	}

	// A vehicle referencing a missing model means the store is broken,
	// not that the caller asked for something absent.
	model, err := i.models.GetByID(ctx, v.ModelID())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.DataConsistencyViolation(
				fmt.Sprintf("vehicle %s references missing model %s", v.ID(), v.ModelID()))
		}
		return "", err
	}

	hasLive, err := i.bookings.HasLiveBooking(ctx, cust.ID(), v.ID())
	if err != nil {
		return "", err
	}
	if hasLive {
		return "", shared.Conflict(
			fmt.Sprintf("customer %s already has a live booking for vehicle %s", cust.ID(), v.ID()))
	}

	b, err := booking.NewBooking(cust, model, v.ID())
	if err != nil {
		return "", err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.bookings.InsertMut(b))
	uow.Track(b)

	if err := uow.Commit(ctx); err != nil {
		return "", err
	}

	return b.ID(), nil
}
