package shared

import (
	"errors"
	"fmt"
)

// Error kinds as sentinel values. Concrete errors wrap one of these so
// callers can classify with errors.Is without matching message text.
var (
	// ErrDomainRuleViolation marks an illegal state transition or invariant
	// breach. Never retried, surfaced to the caller as invalid input.
	ErrDomainRuleViolation = errors.New("domain rule violation")

	// ErrAlreadyInThisState marks a transition to the state the aggregate
	// already has.
	ErrAlreadyInThisState = errors.New("already in this state")

	// ErrNotFound marks a referenced aggregate that is absent when absence
	// is a legitimate business outcome.
	ErrNotFound = errors.New("not found")

	// ErrDataConsistencyViolation marks a missing aggregate that invariants
	// guarantee must exist. Fatal, never expected in a healthy system.
	ErrDataConsistencyViolation = errors.New("data consistency violation")

	// ErrConflict marks an operation that collides with existing state,
	// e.g. a second live booking for the same customer and vehicle.
	ErrConflict = errors.New("conflict")

	// ErrCommitFailed marks a storage-layer failure during a unit-of-work
	// commit. Carries the underlying cause; callers do not retry.
	ErrCommitFailed = errors.New("commit failed")

	ErrValueIsRequired = errors.New("value is required")
	ErrValueOutOfRange = errors.New("value out of range")
)

// DomainRuleViolation wraps ErrDomainRuleViolation with context.
func DomainRuleViolation(msg string) error {
	return fmt.Errorf("%w: %s", ErrDomainRuleViolation, msg)
}

// NotFound wraps ErrNotFound with context.
func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// Conflict wraps ErrConflict with context.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// DataConsistencyViolation wraps ErrDataConsistencyViolation with context.
func DataConsistencyViolation(msg string) error {
	return fmt.Errorf("%w: %s", ErrDataConsistencyViolation, msg)
}

// CommitFailure wraps a storage error as a commit failure, preserving the
// cause for errors.Is/As inspection.
func CommitFailure(cause error) error {
	return fmt.Errorf("%w: %w", ErrCommitFailed, cause)
}
