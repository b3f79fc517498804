package add_customer

import (
	"context"
	"errors"

	"github.com/light-bringer/booking-service/internal/app/customer/contracts"
	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request carries an approved driving license: the account and the
// vehicle categories it covers.
type Request struct {
	CustomerID string
	Categories []string
}

// Interactor handles license approval. A first approval creates the
// customer; a re-approval after expiry re-enables booking rights on the
// existing one. Both paths are driven by the same inbound event, so the
// operation has to be idempotent across redeliveries.
type Interactor struct {
	customers contracts.CustomerRepository
	applier   committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new add customer interactor.
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

// Execute creates the customer or re-enables booking rights.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	uow := committer.NewUnitOfWork(i.applier, i.clock)

	existing, err := i.customers.GetByID(ctx, req.CustomerID)
	switch {
	case err == nil:
		existing.EnableBookingRights()
		uow.Add(i.customers.UpdateMut(existing))
		uow.Track(existing)

	case errors.Is(err, shared.ErrNotFound):
		categories, err := shared.NewCategories(req.Categories)
		if err != nil {
			return err
		}
		created, err := customer.NewCustomer(req.CustomerID, categories)
		if err != nil {
			return err
		}
		uow.Add(i.customers.InsertMut(created))
		uow.Track(created)

	default:
		return err
	}

	return uow.Commit(ctx)
}
