package booking

import (
	"fmt"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Status is the closed set of booking lifecycle states. The numeric ids
// match the seeded status lookup table.
type Status int64

const (
	StatusInProcess Status = 1
	StatusNotBooked Status = 2
	StatusBooked    Status = 3
	StatusCanceled  Status = 4
	StatusCompleted Status = 5
)

var statusNames = map[Status]string{
	StatusInProcess: "in_process",
	StatusNotBooked: "not_booked",
	StatusBooked:    "booked",
	StatusCanceled:  "canceled",
	StatusCompleted: "completed",
}

// allowedTransitions is the full transition table. Pairs not present are
// domain-rule violations; the same-state pair is rejected separately.
var allowedTransitions = map[Status][]Status{
	StatusInProcess: {StatusNotBooked, StatusBooked},
	StatusBooked:    {StatusCompleted, StatusCanceled},
}

// Name returns the stored name of the status.
func (s Status) Name() string {
	return statusNames[s]
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// CanTransitionTo checks the transition table. It returns
// shared.ErrAlreadyInThisState for the same-state pair and a domain-rule
// violation for any pair outside the table.
func (s Status) CanTransitionTo(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown booking status %d", shared.ErrValueOutOfRange, next)
	}
	if s == next {
		return fmt.Errorf("%w: booking is already %s", shared.ErrAlreadyInThisState, s.Name())
	}
	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return nil
		}
	}
	return shared.DomainRuleViolation(
		fmt.Sprintf("booking status cannot change from %s to %s", s.Name(), next.Name()))
}

// StatusFromID resolves a stored status id.
func StatusFromID(id int64) (Status, error) {
	s := Status(id)
	if !s.IsValid() {
		return 0, fmt.Errorf("%w: unknown booking status id %d", shared.ErrValueOutOfRange, id)
	}
	return s, nil
}

// StatusFromName resolves a stored status name.
func StatusFromName(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown booking status %q", shared.ErrValueOutOfRange, name)
}

// AllStatuses returns every status, for seeding the lookup table.
func AllStatuses() []Status {
	return []Status{StatusInProcess, StatusNotBooked, StatusBooked, StatusCanceled, StatusCompleted}
}
