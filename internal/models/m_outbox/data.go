package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the outbox_events table.
// ProcessedOn stays NULL until the relay has published the event and run
// its internal reaction; the pending scan filters on that NULL.
type Data struct {
	EventID     string           `spanner:"event_id"`
	EventType   string           `spanner:"event_type"`
	Content     spanner.NullJSON `spanner:"content"`
	OccurredOn  time.Time        `spanner:"occurred_on"`
	ProcessedOn spanner.NullTime `spanner:"processed_on"`
}
