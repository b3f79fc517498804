package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
)

// Field names for change tracking.
const (
	FieldStatus = "status"
	FieldStart  = "start"
	FieldEnd    = "end"
)

// Booking is the aggregate root for the booking lifecycle. Start is set
// only on entering Booked; End only on entering Completed or Canceled.
// The free-wait grace period is fixed at creation from the customer's
// loyalty level.
type Booking struct {
	shared.EventBuffer

	id         string
	customerID string
	vehicleID  string
	status     Status
	freeWait   shared.FreeWait
	start      *time.Time
	end        *time.Time

	changes *shared.ChangeTracker
}

// NewBooking creates a booking for a customer and vehicle after checking
// the customer may book the vehicle's model. The new booking is InProcess
// and emits a CreatedEvent.
func NewBooking(cust *customer.Customer, model *vehicle.Model, vehicleID string) (*Booking, error) {
	if cust == nil {
		return nil, fmt.Errorf("%w: customer cannot be nil", shared.ErrValueIsRequired)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: vehicle model cannot be nil", shared.ErrValueIsRequired)
	}
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle id cannot be empty", shared.ErrValueIsRequired)
	}

	if !cust.CanBookCategory(model.Category()) {
		return nil, shared.DomainRuleViolation("customer cannot book this vehicle model")
	}

	b := &Booking{
		id:         uuid.New().String(),
		customerID: cust.ID(),
		vehicleID:  vehicleID,
		status:     StatusInProcess,
		freeWait:   cust.Level().FreeWait(),
		changes:    shared.NewChangeTracker(),
	}
	b.changes.MarkDirty(FieldStatus)

	b.Record(&CreatedEvent{
		EventID:    uuid.New().String(),
		BookingID:  b.id,
		VehicleID:  b.vehicleID,
		CustomerID: b.customerID,
	})

	return b, nil
}

// ReconstructBooking reconstitutes a booking loaded from storage.
func ReconstructBooking(
	id, customerID, vehicleID string,
	status Status,
	freeWait shared.FreeWait,
	start, end *time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		vehicleID:  vehicleID,
		status:     status,
		freeWait:   freeWait,
		start:      start,
		end:        end,
		changes:    shared.NewChangeTracker(),
	}
}

func (b *Booking) ID() string                { return b.id }
func (b *Booking) CustomerID() string        { return b.customerID }
func (b *Booking) VehicleID() string         { return b.vehicleID }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) FreeWait() shared.FreeWait { return b.freeWait }
func (b *Booking) Start() *time.Time         { return b.start }
func (b *Booking) End() *time.Time           { return b.end }

func (b *Booking) Changes() *shared.ChangeTracker { return b.changes }

// MarkAsNotBooked aborts an in-process booking whose vehicle check-in
// failed. No timestamps are set.
func (b *Booking) MarkAsNotBooked() error {
	if err := b.status.CanTransitionTo(StatusNotBooked); err != nil {
		return err
	}
	b.setStatus(StatusNotBooked)
	return nil
}

// Book transitions the booking to Booked and starts the free-wait window.
func (b *Booking) Book(now time.Time) error {
	if err := b.status.CanTransitionTo(StatusBooked); err != nil {
		return err
	}
	b.setStatus(StatusBooked)
	b.start = &now
	b.changes.MarkDirty(FieldStart)
	return nil
}

// Complete finishes a booked trip and emits a CompletedEvent.
func (b *Booking) Complete(now time.Time) error {
	if err := b.status.CanTransitionTo(StatusCompleted); err != nil {
		return err
	}
	b.setStatus(StatusCompleted)
	b.end = &now
	b.changes.MarkDirty(FieldEnd)

	b.Record(&CompletedEvent{
		EventID:    uuid.New().String(),
		BookingID:  b.id,
		VehicleID:  b.vehicleID,
		CustomerID: b.customerID,
	})
	return nil
}

// Cancel cancels a booked vehicle and emits a CanceledEvent.
func (b *Booking) Cancel(now time.Time) error {
	if err := b.status.CanTransitionTo(StatusCanceled); err != nil {
		return err
	}
	b.setStatus(StatusCanceled)
	b.end = &now
	b.changes.MarkDirty(FieldEnd)

	b.recordCanceled()
	return nil
}

// Expire cancels a booking whose free-wait window has elapsed. It
// re-validates the time condition against the aggregate state, so stale
// scanner results are rejected instead of applied.
func (b *Booking) Expire(now time.Time) error {
	if err := b.status.CanTransitionTo(StatusCanceled); err != nil {
		return err
	}
	if b.start == nil {
		return shared.DomainRuleViolation("booking has no start time, free-wait has not begun")
	}
	if now.Before(b.start.Add(b.freeWait.Duration())) {
		return shared.DomainRuleViolation("free-wait has not elapsed yet, booking cannot expire")
	}

	b.setStatus(StatusCanceled)
	b.end = &now
	b.changes.MarkDirty(FieldEnd)

	b.recordCanceled()
	return nil
}

// IsFreeWaitExpired reports whether the free-wait window has elapsed for a
// booked vehicle.
func (b *Booking) IsFreeWaitExpired(now time.Time) bool {
	return b.status == StatusBooked && b.start != nil && !now.Before(b.start.Add(b.freeWait.Duration()))
}

func (b *Booking) setStatus(next Status) {
	b.status = next
	b.changes.MarkDirty(FieldStatus)
}

func (b *Booking) recordCanceled() {
	b.Record(&CanceledEvent{
		EventID:    uuid.New().String(),
		BookingID:  b.id,
		VehicleID:  b.vehicleID,
		CustomerID: b.customerID,
	})
}
