package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/booking-service/internal/app/customer/contracts"
	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/models/m_customer"
)

// CustomerRepo implements CustomerRepository for Spanner.
type CustomerRepo struct {
	client *spanner.Client
	model  *m_customer.Model
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(client *spanner.Client) contracts.CustomerRepository {
	return &CustomerRepo{
		client: client,
		model:  m_customer.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new customer.
func (r *CustomerRepo) InsertMut(c *customer.Customer) *spanner.Mutation {
	return r.model.InsertMut(&m_customer.Data{
		CustomerID:       c.ID(),
		LevelID:          int64(c.Level()),
		IsCanBooking:     c.IsCanBooking(),
		Categories:       categoriesToStrings(c.Categories()),
		Trips:            int64(c.Trips()),
		CanceledBookings: int64(c.CanceledBookings()),
	})
}

// UpdateMut creates a mutation covering only dirty fields.
func (r *CustomerRepo) UpdateMut(c *customer.Customer) *spanner.Mutation {
	changes := c.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(customer.FieldLevel) {
		updates[m_customer.LevelID] = int64(c.Level())
	}
	if changes.Dirty(customer.FieldIsCanBooking) {
		updates[m_customer.IsCanBooking] = c.IsCanBooking()
	}
	if changes.Dirty(customer.FieldCategories) {
		updates[m_customer.Categories] = categoriesToStrings(c.Categories())
	}
	if changes.Dirty(customer.FieldTrips) {
		updates[m_customer.Trips] = int64(c.Trips())
	}
	if changes.Dirty(customer.FieldCanceledBookings) {
		updates[m_customer.CanceledBookings] = int64(c.CanceledBookings())
	}

	return r.model.UpdateMut(c.ID(), updates)
}

// GetByID retrieves a customer by ID, reconstructing the domain aggregate.
func (r *CustomerRepo) GetByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	row, err := r.client.Single().ReadRow(ctx, m_customer.TableName, spanner.Key{customerID}, r.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, shared.NotFound(fmt.Sprintf("customer %s", customerID))
		}
		return nil, fmt.Errorf("read customer: %w", err)
	}

	var data m_customer.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("parse customer: %w", err)
	}

	return dataToDomain(&data)
}

func dataToDomain(data *m_customer.Data) (*customer.Customer, error) {
	level, err := customer.LevelFromID(data.LevelID)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", data.CustomerID, err)
	}

	categories, err := shared.NewCategories(data.Categories)
	if err != nil {
		return nil, fmt.Errorf("customer %s: %w", data.CustomerID, err)
	}

	return customer.ReconstructCustomer(
		data.CustomerID,
		level,
		data.IsCanBooking,
		categories,
		int(data.Trips),
		int(data.CanceledBookings),
	), nil
}

func categoriesToStrings(categories []shared.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
