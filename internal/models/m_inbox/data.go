package m_inbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the inbox_events table. The
// primary key on EventID makes saving the same broker message twice a
// no-op, which is what deduplicates redeliveries.
type Data struct {
	EventID     string           `spanner:"event_id"`
	EventType   string           `spanner:"event_type"`
	Content     spanner.NullJSON `spanner:"content"`
	OccurredOn  time.Time        `spanner:"occurred_on"`
	ProcessedOn spanner.NullTime `spanner:"processed_on"`
}
