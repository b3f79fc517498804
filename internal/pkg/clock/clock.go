package clock

import "time"

// Clock abstracts the current time so free-wait checks and event
// timestamps can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. Stored timestamps are always UTC.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current time in UTC.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a manually advanced clock for tests.
type MockClock struct {
	current time.Time
}

// NewMockClock creates a MockClock starting at the given time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
