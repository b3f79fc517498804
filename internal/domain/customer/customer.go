package customer

import (
	"fmt"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Field names for change tracking.
const (
	FieldLevel            = "level"
	FieldIsCanBooking     = "is_can_booking"
	FieldTrips            = "trips"
	FieldCanceledBookings = "canceled_bookings"
	FieldCategories       = "categories"
)

// Customer is the aggregate root for booking rights and loyalty.
// Points are always derived from trips and canceled bookings; the level is
// the only cached loyalty value and moves one step at a time.
type Customer struct {
	shared.EventBuffer

	id               string
	level            Level
	isCanBooking     bool
	categories       []shared.Category
	trips            int
	canceledBookings int

	changes *shared.ChangeTracker
}

// NewCustomer creates a new customer aggregate with booking rights enabled
// at the standard level.
func NewCustomer(id string, categories []shared.Category) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: customer id cannot be empty", shared.ErrValueIsRequired)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: customer categories cannot be empty", shared.ErrValueIsRequired)
	}

	c := &Customer{
		id:           id,
		level:        LevelStandard,
		isCanBooking: true,
		categories:   categories,
		changes:      shared.NewChangeTracker(),
	}

	c.changes.MarkDirty(FieldLevel)
	c.changes.MarkDirty(FieldIsCanBooking)
	c.changes.MarkDirty(FieldCategories)

	return c, nil
}

// ReconstructCustomer reconstitutes a customer loaded from storage.
func ReconstructCustomer(
	id string,
	level Level,
	isCanBooking bool,
	categories []shared.Category,
	trips, canceledBookings int,
) *Customer {
	return &Customer{
		id:               id,
		level:            level,
		isCanBooking:     isCanBooking,
		categories:       categories,
		trips:            trips,
		canceledBookings: canceledBookings,
		changes:          shared.NewChangeTracker(),
	}
}

func (c *Customer) ID() string                     { return c.id }
func (c *Customer) Level() Level                   { return c.level }
func (c *Customer) IsCanBooking() bool             { return c.isCanBooking }
func (c *Customer) Categories() []shared.Category  { return c.categories }
func (c *Customer) Trips() int                     { return c.trips }
func (c *Customer) CanceledBookings() int          { return c.canceledBookings }
func (c *Customer) Changes() *shared.ChangeTracker { return c.changes }

// Points derives the current loyalty points.
func (c *Customer) Points() LoyaltyPoints {
	return PointsFromTrips(c.trips, c.canceledBookings)
}

// CanBookCategory reports whether the customer may book a vehicle model of
// the given category.
func (c *Customer) CanBookCategory(category shared.Category) bool {
	if !c.isCanBooking {
		return false
	}
	for _, allowed := range c.categories {
		if allowed == category {
			return true
		}
	}
	return false
}

// AddTrip increments the completed trip count.
func (c *Customer) AddTrip() {
	c.trips++
	c.changes.MarkDirty(FieldTrips)
}

// AddCanceledBooking increments the canceled booking count.
func (c *Customer) AddCanceledBooking() {
	c.canceledBookings++
	c.changes.MarkDirty(FieldCanceledBookings)
}

// ChangeToOneLevel moves the cached level one step toward the derived
// points. It fails when no change is warranted.
func (c *Customer) ChangeToOneLevel() error {
	newLevel, err := c.level.NextForPoints(c.Points())
	if err != nil {
		return err
	}
	c.level = newLevel
	c.changes.MarkDirty(FieldLevel)
	return nil
}

// RevokeBookingRights disables booking for the customer.
func (c *Customer) RevokeBookingRights() {
	c.isCanBooking = false
	c.changes.MarkDirty(FieldIsCanBooking)
}

// EnableBookingRights re-enables booking for the customer.
func (c *Customer) EnableBookingRights() {
	c.isCanBooking = true
	c.changes.MarkDirty(FieldIsCanBooking)
}
