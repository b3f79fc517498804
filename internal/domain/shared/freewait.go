package shared

import "time"

// FreeWait is the grace period after a vehicle is booked during which the
// customer must occupy it before the booking auto-cancels.
type FreeWait struct {
	duration time.Duration
}

var (
	// StandardFreeWait applies to standard-level customers.
	StandardFreeWait = FreeWait{duration: 5 * time.Minute}
	// IncreasedFreeWait applies to trustworthy-level customers.
	IncreasedFreeWait = FreeWait{duration: 15 * time.Minute}
)

// FreeWaitFromDuration reconstitutes a stored free-wait value.
func FreeWaitFromDuration(d time.Duration) FreeWait {
	return FreeWait{duration: d}
}

// Duration returns the grace period length.
func (f FreeWait) Duration() time.Duration {
	return f.duration
}
