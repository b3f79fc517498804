package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/models/m_vehicle"
)

// VehicleRepo implements VehicleRepository for Spanner.
type VehicleRepo struct {
	client *spanner.Client
	model  *m_vehicle.Model
}

// NewVehicleRepo creates a new VehicleRepo.
func NewVehicleRepo(client *spanner.Client) contracts.VehicleRepository {
	return &VehicleRepo{
		client: client,
		model:  m_vehicle.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new vehicle.
func (r *VehicleRepo) InsertMut(v *vehicle.Vehicle) *spanner.Mutation {
	return r.model.InsertMut(&m_vehicle.Data{
		VehicleID: v.ID(),
		ModelID:   v.ModelID(),
		IsDeleted: v.IsDeleted(),
	})
}

// UpdateMut creates a mutation covering only dirty fields.
func (r *VehicleRepo) UpdateMut(v *vehicle.Vehicle) *spanner.Mutation {
	changes := v.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(vehicle.FieldIsDeleted) {
		updates[m_vehicle.IsDeleted] = v.IsDeleted()
	}

	return r.model.UpdateMut(v.ID(), updates)
}

// GetByID retrieves a vehicle by ID, reconstructing the domain aggregate.
func (r *VehicleRepo) GetByID(ctx context.Context, vehicleID string) (*vehicle.Vehicle, error) {
	row, err := r.client.Single().ReadRow(ctx, m_vehicle.TableName, spanner.Key{vehicleID}, r.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, shared.NotFound(fmt.Sprintf("vehicle %s", vehicleID))
		}
		return nil, fmt.Errorf("read vehicle: %w", err)
	}

	var data m_vehicle.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("parse vehicle: %w", err)
	}

	return vehicle.ReconstructVehicle(data.VehicleID, data.ModelID, data.IsDeleted), nil
}
