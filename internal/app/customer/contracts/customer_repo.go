package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/booking-service/internal/domain/customer"
)

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	// InsertMut creates a mutation for inserting a new customer.
	InsertMut(c *customer.Customer) *spanner.Mutation

	// UpdateMut creates a mutation covering only dirty fields.
	// Returns nil when nothing changed.
	UpdateMut(c *customer.Customer) *spanner.Mutation

	// GetByID retrieves a customer by ID, reconstructing the aggregate.
	GetByID(ctx context.Context, customerID string) (*customer.Customer, error)
}
