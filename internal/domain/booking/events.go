package booking

// Event type tags. The outbox relay resolves broker topics and internal
// reactions from these.
const (
	EventTypeCreated   = "booking.created"
	EventTypeCompleted = "booking.completed"
	EventTypeCanceled  = "booking.canceled"
)

// CreatedEvent is emitted when a booking is created.
type CreatedEvent struct {
	EventID    string `json:"event_id"`
	BookingID  string `json:"booking_id"`
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
}

func (e *CreatedEvent) ID() string          { return e.EventID }
func (e *CreatedEvent) Type() string        { return EventTypeCreated }
func (e *CreatedEvent) AggregateID() string { return e.BookingID }

// CompletedEvent is emitted when a booking completes.
type CompletedEvent struct {
	EventID    string `json:"event_id"`
	BookingID  string `json:"booking_id"`
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
}

func (e *CompletedEvent) ID() string          { return e.EventID }
func (e *CompletedEvent) Type() string        { return EventTypeCompleted }
func (e *CompletedEvent) AggregateID() string { return e.BookingID }

// CanceledEvent is emitted when a booking is canceled, whether by an
// explicit cancel command or by free-wait expiration.
type CanceledEvent struct {
	EventID    string `json:"event_id"`
	BookingID  string `json:"booking_id"`
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
}

func (e *CanceledEvent) ID() string          { return e.EventID }
func (e *CanceledEvent) Type() string        { return EventTypeCanceled }
func (e *CanceledEvent) AggregateID() string { return e.BookingID }
