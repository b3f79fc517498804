package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/booking-service/internal/app/booking/usecases/expire_booking"
	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

// ExpiredLister nominates booked bookings whose free-wait window elapsed.
type ExpiredLister interface {
	ListFreeWaitExpired(ctx context.Context, now time.Time, limit int64) ([]*booking.Booking, error)
}

// Expirer cancels one expired booking.
type Expirer interface {
	Execute(ctx context.Context, req *expire_booking.Request) error
}

// Scanner polls for bookings whose free-wait window has elapsed and hands
// each to the expire command. The scan result is only a nomination; the
// command reloads the booking and the aggregate re-validates, so races
// with a concurrent occupation or cancellation resolve safely.
type Scanner struct {
	lister  ExpiredLister
	expirer Expirer
	clock   clock.Clock
	logger  *zap.Logger

	interval  time.Duration
	batchSize int64
}

// NewScanner creates an expiration scanner.
func NewScanner(
	lister ExpiredLister,
	expirer Expirer,
	clk clock.Clock,
	logger *zap.Logger,
	interval time.Duration,
	batchSize int64,
) *Scanner {
	return &Scanner{
		lister:    lister,
		expirer:   expirer,
		clock:     clk,
		logger:    logger,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Run polls until the context is canceled.
func (s *Scanner) Run(ctx context.Context) {
	runLoop(ctx, "expiration-scanner", s.interval, s.logger, s.RunOnce)
}

// RunOnce expires one batch of eligible bookings.
func (s *Scanner) RunOnce(ctx context.Context) error {
	candidates, err := s.lister.ListFreeWaitExpired(ctx, s.clock.Now(), s.batchSize)
	if err != nil {
		return fmt.Errorf("list expired bookings: %w", err)
	}

	for _, candidate := range candidates {
		err := s.expirer.Execute(ctx, &expire_booking.Request{BookingID: candidate.ID()})
		switch {
		case err == nil:
			s.logger.Info("booking expired", zap.String("booking_id", candidate.ID()))
		case errors.Is(err, shared.ErrAlreadyInThisState),
			errors.Is(err, shared.ErrDomainRuleViolation):
			// The booking moved on between scan and execution.
			s.logger.Debug("expiration skipped",
				zap.String("booking_id", candidate.ID()), zap.Error(err))
		default:
			s.logger.Error("expire booking",
				zap.String("booking_id", candidate.ID()), zap.Error(err))
		}
	}
	return nil
}
