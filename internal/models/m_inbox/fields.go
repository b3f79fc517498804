package m_inbox

// Field name constants for the inbox_events table.
const (
	TableName = "inbox_events"

	EventID     = "event_id"
	EventType   = "event_type"
	Content     = "content"
	OccurredOn  = "occurred_on"
	ProcessedOn = "processed_on"
)
