package add_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the announced vehicle.
type Request struct {
	VehicleID string
	ModelID   string
}

// Interactor handles vehicle registration. The vehicle's AddedEvent lands
// in the outbox and the relay announces the processed registration back
// to the fleet.
type Interactor struct {
	vehicles contracts.VehicleRepository
	models   contracts.ModelRepository
	applier  committer.Applier
	clock    clock.Clock
}

// NewInteractor creates a new add vehicle interactor.
func NewInteractor(
	vehicles contracts.VehicleRepository,
	models contracts.ModelRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		vehicles: vehicles,
		models:   models,
		applier:  applier,
		clock:    clk,
	}
}

// Execute registers a new vehicle of a known model.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// Model announcements precede vehicle announcements; a missing model
	// here means events were lost, not that the caller is wrong.
	m, err := i.models.GetByID(ctx, req.ModelID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.DataConsistencyViolation(
				fmt.Sprintf("vehicle %s references missing model %s", req.VehicleID, req.ModelID))
		}
		return err
	}

	v, err := vehicle.NewVehicle(req.VehicleID, m)
	if err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.vehicles.InsertMut(v))
	uow.Track(v)

	return uow.Commit(ctx)
}
