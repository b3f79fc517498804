package customer

import (
	"fmt"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Loyalty point bounds. Points are always derived, never stored.
const (
	MinPoints = 0
	MaxPoints = 200
)

// LoyaltyPoints is a derived score in [MinPoints, MaxPoints].
type LoyaltyPoints int

// NewLoyaltyPoints validates an explicit point value (level thresholds).
func NewLoyaltyPoints(value int) (LoyaltyPoints, error) {
	if value < MinPoints || value > MaxPoints {
		return 0, fmt.Errorf("%w: loyalty points %d outside [%d, %d]",
			shared.ErrValueOutOfRange, value, MinPoints, MaxPoints)
	}
	return LoyaltyPoints(value), nil
}

// PointsFromTrips derives loyalty points from trip and cancellation counts.
// The score is the square of net trips, clamped to the point bounds:
// 20 trips with 1 cancellation saturate at 200, while 10 trips with 9
// cancellations leave a single point.
func PointsFromTrips(trips, canceledBookings int) LoyaltyPoints {
	net := trips - canceledBookings
	if net < 0 {
		net = 0
	}
	score := net * net
	if score > MaxPoints {
		score = MaxPoints
	}
	return LoyaltyPoints(score)
}

// Value returns the numeric score.
func (p LoyaltyPoints) Value() int {
	return int(p)
}
