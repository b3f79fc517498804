package process_occupation

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/booking/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request carries the occupation outcome for an in-process booking.
type Request struct {
	BookingID  string
	IsOccupied bool
}

// Interactor handles the occupation result: a successfully occupied
// vehicle moves the booking to Booked and starts the free-wait window, a
// failed occupation aborts it to NotBooked.
type Interactor struct {
	bookings contracts.BookingRepository
	applier  committer.Applier
	clock    clock.Clock
}

// NewInteractor creates a new process occupation interactor.
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

// Execute applies the occupation outcome to the booking.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	b, err := i.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return err
	}

	if req.IsOccupied {
		err = b.Book(i.clock.Now())
	} else {
		err = b.MarkAsNotBooked()
	}
	if err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.bookings.UpdateMut(b))
	uow.Track(b)

	return uow.Commit(ctx)
}
