package customer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer creation", func(t *testing.T) {
		c, err := NewCustomer(uuid.New().String(), []shared.Category{shared.CategoryA, shared.CategoryB})
		require.NoError(t, err)
		assert.Equal(t, LevelStandard, c.Level())
		assert.True(t, c.IsCanBooking())
		assert.Equal(t, 0, c.Trips())
		assert.Equal(t, 0, c.CanceledBookings())
	})

	t.Run("empty id returns error", func(t *testing.T) {
		_, err := NewCustomer("", []shared.Category{shared.CategoryA})
		assert.ErrorIs(t, err, shared.ErrValueIsRequired)
	})

	t.Run("empty categories return error", func(t *testing.T) {
		_, err := NewCustomer(uuid.New().String(), nil)
		assert.ErrorIs(t, err, shared.ErrValueIsRequired)
	})
}

func TestCustomer_CanBookCategory(t *testing.T) {
	c, err := NewCustomer(uuid.New().String(), []shared.Category{shared.CategoryB})
	require.NoError(t, err)

	assert.True(t, c.CanBookCategory(shared.CategoryB))
	assert.False(t, c.CanBookCategory(shared.CategoryA))

	c.RevokeBookingRights()
	assert.False(t, c.CanBookCategory(shared.CategoryB))

	c.EnableBookingRights()
	assert.True(t, c.CanBookCategory(shared.CategoryB))
}

func TestCustomer_LoyaltyProgression(t *testing.T) {
	c, err := NewCustomer(uuid.New().String(), []shared.Category{shared.CategoryB})
	require.NoError(t, err)

	// 20 completed trips with a single cancellation saturate the score.
	for i := 0; i < 20; i++ {
		c.AddTrip()
	}
	c.AddCanceledBooking()

	assert.Equal(t, 200, c.Points().Value())
	require.True(t, c.Level().IsNeededChange(c.Points()))

	require.NoError(t, c.ChangeToOneLevel())
	assert.Equal(t, LevelTrustworthy, c.Level())

	// One step was enough; a second change is not warranted.
	assert.False(t, c.Level().IsNeededChange(c.Points()))
	assert.ErrorIs(t, c.ChangeToOneLevel(), shared.ErrDomainRuleViolation)
}

func TestPointsFromTrips(t *testing.T) {
	tests := []struct {
		name     string
		trips    int
		canceled int
		want     int
	}{
		{"no trips", 0, 0, 0},
		{"twenty trips one cancellation", 20, 1, 200},
		{"ten trips nine cancellations", 10, 9, 1},
		{"more cancellations than trips", 2, 5, 0},
		{"ten clean trips", 10, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsFromTrips(tt.trips, tt.canceled).Value())
		})
	}
}

func TestNewLoyaltyPoints(t *testing.T) {
	p, err := NewLoyaltyPoints(10)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Value())

	_, err = NewLoyaltyPoints(-1)
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)

	_, err = NewLoyaltyPoints(201)
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)
}

func TestLevel_IsNeededChange(t *testing.T) {
	assert.False(t, LevelStandard.IsNeededChange(50))
	assert.True(t, LevelStandard.IsNeededChange(150))
	assert.False(t, LevelTrustworthy.IsNeededChange(150))
	assert.True(t, LevelTrustworthy.IsNeededChange(50))
	// Points above the top threshold with no higher level to move to.
	assert.False(t, LevelTrustworthy.IsNeededChange(200))
}

func TestLevel_NextForPoints(t *testing.T) {
	t.Run("standard advances to trustworthy", func(t *testing.T) {
		next, err := LevelStandard.NextForPoints(150)
		require.NoError(t, err)
		assert.Equal(t, LevelTrustworthy, next)
	})

	t.Run("trustworthy falls back to standard", func(t *testing.T) {
		next, err := LevelTrustworthy.NextForPoints(10)
		require.NoError(t, err)
		assert.Equal(t, LevelStandard, next)
	})

	t.Run("no change warranted is rejected", func(t *testing.T) {
		_, err := LevelStandard.NextForPoints(50)
		assert.ErrorIs(t, err, shared.ErrDomainRuleViolation)
	})
}

func TestLevel_FreeWait(t *testing.T) {
	assert.Equal(t, shared.StandardFreeWait, LevelStandard.FreeWait())
	assert.Equal(t, shared.IncreasedFreeWait, LevelTrustworthy.FreeWait())
}

func TestLevelFromID(t *testing.T) {
	for _, l := range AllLevels() {
		got, err := LevelFromID(int64(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := LevelFromID(7)
	assert.ErrorIs(t, err, shared.ErrValueOutOfRange)
}
