// Package dispatch routes stored inbound events to their command
// handlers. The mapping from event type to handler is closed: it is built
// once at startup and validated for totality, so an unroutable event type
// is a wiring bug caught at boot instead of a row stuck in the inbox.
package dispatch

// Inbound event types. Each matches the broker topic the fleet publishes
// the event on.
const (
	EventTypeLicenseApproved    = "driving-license-approved"
	EventTypeLicenseExpired     = "driving-license-expired"
	EventTypeModelCreated       = "model-created"
	EventTypeModelCategory      = "model-category-updated"
	EventTypeCheckingStarted    = "vehicle-checking-started"
	EventTypeOccupyingProcessed = "vehicle-occupying-processed"
	EventTypeVehicleAdded       = "vehicle-added"
	EventTypeVehicleDeleted     = "vehicle-deleted"
)

// InboundTypes lists every event type the service consumes.
func InboundTypes() []string {
	return []string{
		EventTypeLicenseApproved,
		EventTypeLicenseExpired,
		EventTypeModelCreated,
		EventTypeModelCategory,
		EventTypeCheckingStarted,
		EventTypeOccupyingProcessed,
		EventTypeVehicleAdded,
		EventTypeVehicleDeleted,
	}
}

// LicenseApprovedPayload announces a driving license approval.
type LicenseApprovedPayload struct {
	EventID    string   `json:"event_id"`
	AccountID  string   `json:"account_id"`
	Categories []string `json:"categories"`
}

// LicenseExpiredPayload announces a driving license expiry.
type LicenseExpiredPayload struct {
	EventID   string `json:"event_id"`
	AccountID string `json:"account_id"`
}

// ModelCreatedPayload announces a new vehicle model.
type ModelCreatedPayload struct {
	EventID  string `json:"event_id"`
	ModelID  string `json:"model_id"`
	Category string `json:"category"`
}

// ModelCategoryUpdatedPayload announces a vehicle model category change.
type ModelCategoryUpdatedPayload struct {
	EventID  string `json:"event_id"`
	ModelID  string `json:"model_id"`
	Category string `json:"category"`
}

// CheckingStartedPayload announces that the end-of-trip vehicle check
// began, which completes the booking.
type CheckingStartedPayload struct {
	EventID   string `json:"event_id"`
	BookingID string `json:"booking_id"`
}

// OccupyingProcessedPayload announces the outcome of occupying a vehicle
// for an in-process booking.
type OccupyingProcessedPayload struct {
	EventID    string `json:"event_id"`
	BookingID  string `json:"booking_id"`
	IsOccupied bool   `json:"is_occupied"`
}

// VehicleAddedPayload announces a vehicle joining the fleet.
type VehicleAddedPayload struct {
	EventID   string `json:"event_id"`
	VehicleID string `json:"vehicle_id"`
	ModelID   string `json:"model_id"`
}

// VehicleDeletedPayload announces a vehicle leaving the fleet.
type VehicleDeletedPayload struct {
	EventID   string `json:"event_id"`
	VehicleID string `json:"vehicle_id"`
}
