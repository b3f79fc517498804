package vehicle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Vehicle field names for change tracking.
const (
	FieldIsDeleted = "is_deleted"
)

// Vehicle is an aggregate root referencing its model. Vehicles are never
// physically removed, only soft-deleted.
type Vehicle struct {
	shared.EventBuffer

	id        string
	modelID   string
	isDeleted bool

	changes *shared.ChangeTracker
}

// NewVehicle registers a vehicle of the given model and emits an
// AddedEvent announcing that the vehicle is available for booking.
func NewVehicle(id string, model *Model) (*Vehicle, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: vehicle id cannot be empty", shared.ErrValueIsRequired)
	}
	if model == nil {
		return nil, fmt.Errorf("%w: vehicle model cannot be nil", shared.ErrValueIsRequired)
	}

	v := &Vehicle{
		id:      id,
		modelID: model.ID(),
		changes: shared.NewChangeTracker(),
	}
	v.changes.MarkDirty(FieldIsDeleted)

	v.Record(&AddedEvent{
		EventID:   uuid.New().String(),
		VehicleID: v.id,
		ModelID:   v.modelID,
	})

	return v, nil
}

// ReconstructVehicle reconstitutes a vehicle loaded from storage.
func ReconstructVehicle(id, modelID string, isDeleted bool) *Vehicle {
	return &Vehicle{
		id:        id,
		modelID:   modelID,
		isDeleted: isDeleted,
		changes:   shared.NewChangeTracker(),
	}
}

func (v *Vehicle) ID() string                     { return v.id }
func (v *Vehicle) ModelID() string                { return v.modelID }
func (v *Vehicle) IsDeleted() bool                { return v.isDeleted }
func (v *Vehicle) Changes() *shared.ChangeTracker { return v.changes }

// Delete soft-deletes the vehicle.
func (v *Vehicle) Delete() {
	v.isDeleted = true
	v.changes.MarkDirty(FieldIsDeleted)
}

// Event type tag for vehicle registration.
const EventTypeAdded = "vehicle.added"

// AddedEvent is emitted when a vehicle is registered; the relay announces
// it on the vehicle-adding-processed topic.
type AddedEvent struct {
	EventID   string `json:"event_id"`
	VehicleID string `json:"vehicle_id"`
	ModelID   string `json:"model_id"`
}

func (e *AddedEvent) ID() string          { return e.EventID }
func (e *AddedEvent) Type() string        { return EventTypeAdded }
func (e *AddedEvent) AggregateID() string { return e.VehicleID }
