package record_canceled_booking

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/customer/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the customer whose booking was canceled.
type Request struct {
	CustomerID string
}

// Interactor records a canceled booking and moves the loyalty level one
// step when the derived points call for it. It runs as the relay's
// internal reaction to BookingCanceled, whether the cancellation was
// requested or came from free-wait expiry.
type Interactor struct {
	customers contracts.CustomerRepository
	applier   committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new record canceled booking interactor.
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

// Execute increments the canceled booking count and re-checks the level.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	c, err := i.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return err
	}

	c.AddCanceledBooking()
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
