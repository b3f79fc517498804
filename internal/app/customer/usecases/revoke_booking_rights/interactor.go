package revoke_booking_rights

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/customer/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the customer whose license expired.
type Request struct {
	CustomerID string
}

// Interactor handles license expiry by revoking booking rights.
type Interactor struct {
	customers contracts.CustomerRepository
	applier   committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new revoke booking rights interactor.
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

// Execute revokes the customer's booking rights.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	c, err := i.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return err
	}

	c.RevokeBookingRights()

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.customers.UpdateMut(c))
	uow.Track(c)

	return uow.Commit(ctx)
}
