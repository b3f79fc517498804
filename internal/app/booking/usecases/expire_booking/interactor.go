package expire_booking

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/booking/contracts"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

// Request contains the booking ID to expire.
type Request struct {
	BookingID string
}

// Interactor handles free-wait expiration. The scanner only nominates
// candidates; the booking is reloaded here and the aggregate re-validates
// the time condition, so a booking completed or canceled between scan and
// execution is rejected instead of overwritten.
type Interactor struct {
	bookings contracts.BookingRepository
	applier  committer.Applier
	clock    clock.Clock
}

// NewInteractor creates a new expire booking interactor.
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

// Execute cancels a booking whose free-wait window has elapsed.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	b, err := i.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return err
	}

	if err := b.Expire(i.clock.Now()); err != nil {
		return err
	}

	uow := committer.NewUnitOfWork(i.applier, i.clock)
	uow.Add(i.bookings.UpdateMut(b))
	uow.Track(b)

	return uow.Commit(ctx)
}
