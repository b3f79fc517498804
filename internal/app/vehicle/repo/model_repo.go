package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/booking-service/internal/app/vehicle/contracts"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/models/m_vehicle_model"
)

// ModelRepo implements ModelRepository for Spanner.
type ModelRepo struct {
	client *spanner.Client
	model  *m_vehicle_model.Model
}

// NewModelRepo creates a new ModelRepo.
func NewModelRepo(client *spanner.Client) contracts.ModelRepository {
	return &ModelRepo{
		client: client,
		model:  m_vehicle_model.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new vehicle model.
func (r *ModelRepo) InsertMut(m *vehicle.Model) *spanner.Mutation {
	return r.model.InsertMut(&m_vehicle_model.Data{
		ModelID:  m.ID(),
		Category: string(m.Category()),
	})
}

// UpdateMut creates a mutation covering only dirty fields.
func (r *ModelRepo) UpdateMut(m *vehicle.Model) *spanner.Mutation {
	changes := m.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(vehicle.FieldCategory) {
		updates[m_vehicle_model.Category] = string(m.Category())
	}

	return r.model.UpdateMut(m.ID(), updates)
}

// GetByID retrieves a vehicle model by ID, reconstructing the domain aggregate.
func (r *ModelRepo) GetByID(ctx context.Context, modelID string) (*vehicle.Model, error) {
	row, err := r.client.Single().ReadRow(ctx, m_vehicle_model.TableName, spanner.Key{modelID}, r.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, shared.NotFound(fmt.Sprintf("vehicle model %s", modelID))
		}
		return nil, fmt.Errorf("read vehicle model: %w", err)
	}

	var data m_vehicle_model.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("parse vehicle model: %w", err)
	}

	category, err := shared.NewCategory(data.Category)
	if err != nil {
		return nil, fmt.Errorf("vehicle model %s: %w", data.ModelID, err)
	}

	return vehicle.ReconstructModel(data.ModelID, category), nil
}
