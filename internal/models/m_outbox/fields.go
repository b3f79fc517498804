package m_outbox

// Field name constants for the outbox_events table.
const (
	TableName = "outbox_events"

	EventID     = "event_id"
	EventType   = "event_type"
	Content     = "content"
	OccurredOn  = "occurred_on"
	ProcessedOn = "processed_on"
)
