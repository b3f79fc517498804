package m_inbox

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the inbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an inbox event.
// It uses a plain insert so a duplicate event id fails with AlreadyExists
// instead of silently overwriting the stored message.
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
// timestamp of an inbox event.
func (m *Model) MarkProcessedMut(eventID string, processedOn time.Time) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{EventID, ProcessedOn},
		[]interface{}{eventID, processedOn},
	)
}

// ReadColumns returns the column names for reading inbox events.
func (m *Model) ReadColumns() []string {
	return []string{
		EventID,
		EventType,
		Content,
		OccurredOn,
		ProcessedOn,
	}
}
