package add_vehicle_model

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the announced vehicle model.
type Request struct {
	ModelID  string
	Category string
}

// Interactor handles vehicle model registration.
type Interactor struct {
	models  contracts.ModelRepository
	applier committer.Applier
	clock   clock.Clock
}

// NewInteractor creates a new add vehicle model interactor.
func NewInteractor(
	models contracts.ModelRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		models:  models,
		applier: applier,
		clock:   clk,
	}
}

// Execute registers a new vehicle model.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	category, err := shared.NewCategory(req.Category)
	if err != nil {
		return err
	}

	m, err := vehicle.NewModel(req.ModelID, category)
	if err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.models.InsertMut(m))
	uow.Track(m)

	return uow.Commit(ctx)
}
