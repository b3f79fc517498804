package record_trip

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/customer/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the customer whose booking completed.
type Request struct {
	CustomerID string
}

// Interactor records a completed trip and moves the loyalty level one
// step when the derived points call for it. It runs as the relay's
// internal reaction to BookingCompleted.
type Interactor struct {
	customers contracts.CustomerRepository
	applier   committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new record trip interactor.
func NewInteractor(
	customers contracts.CustomerRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		customers: customers,
		applier:   applier,
		clock:     clk,
	}
}

// Execute increments the trip count and re-checks the loyalty level.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	c, err := i.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return err
	}

	c.AddTrip()
	if c.Level().IsNeededChange(c.Points()) {
		if err := c.ChangeToOneLevel(); err != nil {
			return err
		}
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.customers.UpdateMut(c))
	uow.Track(c)

	return uow.Commit(ctx)
}
