package change_model_category

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the model and its new category.
type Request struct {
	ModelID  string
	Category string
}

// Interactor handles vehicle model category updates. The change only
// affects bookings created afterwards; live bookings keep the category
// check result from their creation.
type Interactor struct {
	models  contracts.ModelRepository
	applier committer.Applier
	clock   clock.Clock
}

// NewInteractor creates a new change model category interactor.
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

// Execute updates the model's category.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	category, err := shared.NewCategory(req.Category)
	if err != nil {
		return err
	}

	m, err := i.models.GetByID(ctx, req.ModelID)
	if err != nil {
		return err
	}

	if err := m.ChangeCategory(category); err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.models.UpdateMut(m))
	uow.Track(m)

	return uow.Commit(ctx)
}
