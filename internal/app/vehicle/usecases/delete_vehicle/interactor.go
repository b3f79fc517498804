package delete_vehicle

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the vehicle to delete.
type Request struct {
	VehicleID string
}

// Interactor handles vehicle removal. Vehicles are soft-deleted so
// historical bookings keep a valid reference.
type Interactor struct {
	vehicles contracts.VehicleRepository
	applier  committer.Applier
	clock    clock.Clock
}

// NewInteractor creates a new delete vehicle interactor.
func NewInteractor(
	vehicles contracts.VehicleRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		vehicles: vehicles,
		applier:  applier,
		clock:    clk,
	}
}

// Execute soft-deletes the vehicle.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	v, err := i.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return err
	}

	v.Delete()

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.vehicles.UpdateMut(v))
	uow.Track(v)

	return uow.Commit(ctx)
}
