package customer

import (
	"fmt"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Level is the closed set of loyalty levels. The numeric ids match the
// seeded level lookup table.
type Level int64

const (
	LevelStandard    Level = 1
	LevelTrustworthy Level = 2
)

type levelInfo struct {
	name         string
	neededPoints LoyaltyPoints
}

var levels = map[Level]levelInfo{
	LevelStandard:    {name: "standard", neededPoints: MinPoints},
	LevelTrustworthy: {name: "trustworthy", neededPoints: 100},
}

// Name returns the stored name of the level.
func (l Level) Name() string {
	return levels[l].name
}

// NeededPoints returns the point threshold required to hold this level.
func (l Level) NeededPoints() LoyaltyPoints {
	return levels[l].neededPoints
}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	_, ok := levels[l]
	return ok
}

// IsNeededChange reports whether the level no longer matches the given
// points: points fell below this level's threshold, or exceed the next
// level's threshold.
func (l Level) IsNeededChange(points LoyaltyPoints) bool {
	if points < l.NeededPoints() {
		return true
	}
	next := l + 1
	return next.IsValid() && points > next.NeededPoints()
}

// NextForPoints returns the level one step toward the given points.
// Callers must check IsNeededChange first; moving more than one step
// requires repeated calls.
func (l Level) NextForPoints(points LoyaltyPoints) (Level, error) {
	if !l.IsNeededChange(points) {
		return 0, shared.DomainRuleViolation("points not in range for changing level")
	}
	if points < l.NeededPoints() {
		prev := l - 1
		if !prev.IsValid() {
			return LevelStandard, nil
		}
		return prev, nil
	}
	next := l + 1
	if !next.IsValid() {
		return 0, shared.DomainRuleViolation("level is already at maximum")
	}
	return next, nil
}

// FreeWait returns the free-wait grace period granted at this level.
func (l Level) FreeWait() shared.FreeWait {
	if l == LevelTrustworthy {
		return shared.IncreasedFreeWait
	}
	return shared.StandardFreeWait
}

// LevelFromID resolves a stored level id.
func LevelFromID(id int64) (Level, error) {
	l := Level(id)
	if !l.IsValid() {
		return 0, fmt.Errorf("%w: unknown level id %d", shared.ErrValueOutOfRange, id)
	}
	return l, nil
}

// LevelFromName resolves a stored level name.
func LevelFromName(name string) (Level, error) {
	for l, info := range levels {
		if info.name == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown level %q", shared.ErrValueOutOfRange, name)
}

// AllLevels returns every level, for seeding the lookup table.
func AllLevels() []Level {
	return []Level{LevelStandard, LevelTrustworthy}
}
