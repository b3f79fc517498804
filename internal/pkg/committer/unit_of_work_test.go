package committer

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/domain/vehicle"
	"github.com/light-bringer/booking-service/internal/models/m_customer"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

type fakeApplier struct {
	applied *CommitPlan
	err     error
}

func (f *fakeApplier) Apply(_ context.Context, plan *CommitPlan) error {
	if f.err != nil {
		return f.err
	}
	f.applied = plan
	return nil
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	model, err := vehicle.NewModel(uuid.New().String(), shared.CategoryB)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(uuid.New().String(), model)
	require.NoError(t, err)
	return v
}

func TestUnitOfWork_Commit(t *testing.T) {
	applier := &fakeApplier{}
	mockClock := clock.NewMockClock(time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC))
	uow := NewUnitOfWork(applier, mockClock)

	v := newTestVehicle(t)
	require.Len(t, v.DomainEvents(), 1)

	uow.Add(m_customer.NewModel().InsertMut(&m_customer.Data{
		CustomerID: uuid.New().String(),
		LevelID:    1,
		Categories: []string{"B"},
	}))
	uow.Track(v)

	require.NoError(t, uow.Commit(context.Background()))

	// state mutation plus one outbox row
	require.NotNil(t, applier.applied)
	assert.Equal(t, 2, applier.applied.Count())
	assert.Empty(t, v.DomainEvents(), "events must be cleared after a successful commit")
}

func TestUnitOfWork_Commit_ApplierFailure(t *testing.T) {
	applier := &fakeApplier{err: shared.CommitFailure(errors.New("spanner unavailable"))}
	uow := NewUnitOfWork(applier, clock.NewRealClock())

	v := newTestVehicle(t)
	uow.Track(v)

	err := uow.Commit(context.Background())
	assert.ErrorIs(t, err, shared.ErrCommitFailed)
	assert.Len(t, v.DomainEvents(), 1, "events must survive a failed commit")
}

func TestUnitOfWork_Commit_EmptyPlan(t *testing.T) {
	applier := &fakeApplier{}
	uow := NewUnitOfWork(applier, clock.NewRealClock())

	require.NoError(t, uow.Commit(context.Background()))
	require.NotNil(t, applier.applied)
	assert.True(t, applier.applied.IsEmpty())
}

func TestCommitPlan_Add(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.True(t, plan.IsEmpty(), "nil mutations are ignored")

	plan.Add(spanner.Delete("bookings", spanner.Key{"x"}))
	plan.AddMultiple([]*spanner.Mutation{
		spanner.Delete("bookings", spanner.Key{"y"}),
		nil,
	})
	assert.Equal(t, 2, plan.Count())
}
