package m_outbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an outbox event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			EventID,
			EventType,
			Content,
			OccurredOn,
			ProcessedOn,
		},
		[]interface{}{
			data.EventID,
			data.EventType,
			data.Content,
			data.OccurredOn,
			data.ProcessedOn,
		},
	)
}

// MarkProcessedMut creates a Spanner mutation setting the processed
// timestamp of an outbox event.
func (m *Model) MarkProcessedMut(eventID string, processedOn time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, ProcessedOn},
		[]interface{}{eventID, processedOn},
	)
}

// ReadColumns returns the column names for reading outbox events.
func (m *Model) ReadColumns() []string {
	return []string{
		EventID,
		EventType,
		Content,
		OccurredOn,
		ProcessedOn,
	}
}
