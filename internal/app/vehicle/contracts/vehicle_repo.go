package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/booking-service/internal/domain/vehicle"
)

// VehicleRepository defines the interface for vehicle persistence.
type VehicleRepository interface {
	// InsertMut creates a mutation for inserting a new vehicle.
	InsertMut(v *vehicle.Vehicle) *spanner.Mutation

	// UpdateMut creates a mutation covering only dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(v *vehicle.Vehicle) *spanner.Mutation

	// GetByID retrieves a vehicle by ID, reconstructing the aggregate.
	GetByID(ctx context.Context, vehicleID string) (*vehicle.Vehicle, error)
}

// ModelRepository defines the interface for vehicle model persistence.
type ModelRepository interface {
	// InsertMut creates a mutation for inserting a new vehicle model.
	InsertMut(m *vehicle.Model) *spanner.Mutation

	// UpdateMut creates a mutation covering only dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(m *vehicle.Model) *spanner.Mutation

	// GetByID retrieves a vehicle model by ID, reconstructing the aggregate.
	GetByID(ctx context.Context, modelID string) (*vehicle.Model, error)
}
