package cancel_booking

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/booking/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the booking ID to cancel.
type Request struct {
	BookingID string
}

// Interactor handles the cancel booking use case.
type Interactor struct {
	bookings contracts.BookingRepository
	applier  committer.Applier
	clock    clock.Clock
}

// NewInteractor creates a new cancel booking interactor.
func NewInteractor(
	bookings contracts.BookingRepository,
	applier committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		bookings: bookings,
		applier:  applier,
		clock:    clk,
	}
}

// Execute cancels a booked vehicle. The emitted BookingCanceled event is
// stored in the outbox within the same commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	b, err := i.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return err
	}

	if err := b.Cancel(i.clock.Now()); err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.bookings.UpdateMut(b))
	uow.Track(b)

	return uow.Commit(ctx)
}
