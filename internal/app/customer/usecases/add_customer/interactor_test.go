package add_customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/domain/customer"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/models/m_customer"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
	"github.com/light-bringer/booking-service/internal/pkg/committer"
)

type fakeCustomers struct {
	existing *customer.Customer
	getErr   error

	inserted []*customer.Customer
	updated  []*customer.Customer
}

func (f *fakeCustomers) InsertMut(c *customer.Customer) *spanner.Mutation {
	f.inserted = append(f.inserted, c)
	return m_customer.NewModel().InsertMut(&m_customer.Data{CustomerID: c.ID()})
}

func (f *fakeCustomers) UpdateMut(c *customer.Customer) *spanner.Mutation {
	f.updated = append(f.updated, c)
	return m_customer.NewModel().UpdateMut(c.ID(), map[string]interface{}{
		m_customer.IsCanBooking: c.IsCanBooking(),
	})
}

func (f *fakeCustomers) GetByID(context.Context, string) (*customer.Customer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

type fakeApplier struct {
	applied int
	err     error
}

func (a *fakeApplier) Apply(context.Context, *committer.CommitPlan) error {
	if a.err != nil {
		return a.err
	}
	a.applied++
	return nil
}

func newTestInteractor(customers *fakeCustomers, applier *fakeApplier) *Interactor {
	clk := clock.NewMockClock(time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC))
	return NewInteractor(customers, applier, clk)
}

func TestExecute_CreatesCustomerOnFirstApproval(t *testing.T) {
	customers := &fakeCustomers{getErr: shared.NotFound("customer not found")}
	applier := &fakeApplier{}

	err := newTestInteractor(customers, applier).Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		Categories: []string{"A", "B"},
	})
	require.NoError(t, err)

	require.Len(t, customers.inserted, 1)
	created := customers.inserted[0]
	assert.Equal(t, "cust-1", created.ID())
	assert.Equal(t, customer.LevelStandard, created.Level())
	assert.True(t, created.IsCanBooking())
	assert.Empty(t, customers.updated)
	assert.Equal(t, 1, applier.applied)
}

func TestExecute_ReenablesExistingCustomer(t *testing.T) {
	categories, err := shared.NewCategories([]string{"B"})
	require.NoError(t, err)
	existing := customer.ReconstructCustomer("cust-1", customer.LevelStandard, false, categories, 3, 1)

	customers := &fakeCustomers{existing: existing}
	applier := &fakeApplier{}

	err = newTestInteractor(customers, applier).Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		Categories: []string{"B"},
	})
	require.NoError(t, err)

	require.Len(t, customers.updated, 1)
	assert.True(t, customers.updated[0].IsCanBooking())
	assert.Empty(t, customers.inserted)
}

func TestExecute_RejectsUnknownCategory(t *testing.T) {
	customers := &fakeCustomers{getErr: shared.NotFound("customer not found")}
	applier := &fakeApplier{}

	err := newTestInteractor(customers, applier).Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		Categories: []string{"Z"},
	})
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)
	assert.Zero(t, applier.applied)
}

func TestExecute_PropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("spanner unavailable")
	customers := &fakeCustomers{getErr: lookupErr}

	err := newTestInteractor(customers, &fakeApplier{}).Execute(context.Background(), &Request{
		CustomerID: "cust-1",
		Categories: []string{"B"},
	})
	assert.ErrorIs(t, err, lookupErr)
}
