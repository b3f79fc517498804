package vehicle

import (
	"fmt"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Model field names for change tracking.
const (
	FieldCategory = "category"
)

// Model is the vehicle-model aggregate root. It owns the category used for
// customer eligibility checks.
type Model struct {
	shared.EventBuffer

	id       string
	category shared.Category

	changes *shared.ChangeTracker
}

// NewModel creates a new vehicle model.
func NewModel(id string, category shared.Category) (*Model, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: vehicle model id cannot be empty", shared.ErrValueIsRequired)
	}
	if _, err := shared.NewCategory(string(category)); err != nil {
		return nil, err
	}

	m := &Model{
		id:       id,
		category: category,
		changes:  shared.NewChangeTracker(),
	}
	m.changes.MarkDirty(FieldCategory)

	return m, nil
}

// ReconstructModel reconstitutes a vehicle model loaded from storage.
func ReconstructModel(id string, category shared.Category) *Model {
	return &Model{
		id:       id,
		category: category,
		changes:  shared.NewChangeTracker(),
	}
}

func (m *Model) ID() string                     { return m.id }
func (m *Model) Category() shared.Category      { return m.category }
func (m *Model) Changes() *shared.ChangeTracker { return m.changes }

// ChangeCategory updates the model's category.
func (m *Model) ChangeCategory(category shared.Category) error {
	if _, err := shared.NewCategory(string(category)); err != nil {
		return err
	}
	m.category = category
	m.changes.MarkDirty(FieldCategory)
	return nil
}
