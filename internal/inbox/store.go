// Package inbox implements the transactional inbox: every broker message
// is persisted before its offset is committed, and consumption is
// deduplicated by the event id primary key. The drainer worker later
// dispatches stored rows to command handlers.
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/booking-service/internal/models/m_inbox"
	"github.com/light-bringer/booking-service/internal/pkg/query"
)

// Event is a stored inbound message.
type Event struct {
	EventID    string
	EventType  string
	Content    json.RawMessage
	OccurredOn time.Time
}

// Store provides persistence for inbound events.
type Store struct {
	client *spanner.Client
	model  *m_inbox.Model
}

// NewStore creates a new inbox Store.
func NewStore(client *spanner.Client) *Store {
	return &Store{
		client: client,
		model:  m_inbox.NewModel(),
	}
}

// Save persists an inbound event. It returns false without error when the
// event id is already stored, which is how redelivered broker messages
// collapse into a single row. Malformed payloads are stored with NULL
// content: the row must still land so the offset can be committed and
// redeliveries dedup; the drainer reports the row when dispatch fails.
func (s *Store) Save(ctx context.Context, event *Event) (bool, error) {
	mut := s.model.InsertMut(&m_inbox.Data{
		EventID:    event.EventID,
		EventType:  event.EventType,
		Content:    encodeContent(event.Content),
		OccurredOn: event.OccurredOn,
	})

	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, fmt.Errorf("save inbox event %s: %w", event.EventID, err)
	}
	return true, nil
}

// encodeContent converts a raw payload to the stored JSON column. Empty
// and non-JSON payloads both map to NULL.
func encodeContent(raw json.RawMessage) spanner.NullJSON {
	var content spanner.NullJSON
	if len(raw) == 0 {
		return content
	}
	if err := json.Unmarshal(raw, &content.Value); err != nil {
		return spanner.NullJSON{}
	}
	content.Valid = true
	return content
}

// Pending retrieves unprocessed events in occurrence order, capped at limit.
func (s *Store) Pending(ctx context.Context, limit int64) ([]*Event, error) {
	stmt := query.From(m_inbox.TableName).
		Select(s.model.ReadColumns()...).
		Where(query.IsNull(m_inbox.ProcessedOn)).
		OrderBy(m_inbox.OccurredOn, query.Asc).
		Limit(limit).
		Build()

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*Event
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query pending inbox events: %w", err)
		}

		var data m_inbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse inbox event: %w", err)
		}

		content, err := json.Marshal(data.Content.Value)
		if err != nil {
			return nil, fmt.Errorf("decode inbox event %s content: %w", data.EventID, err)
		}

		events = append(events, &Event{
			EventID:    data.EventID,
			EventType:  data.EventType,
			Content:    content,
			OccurredOn: data.OccurredOn,
		})
	}
	return events, nil
}

// MarkProcessed stamps an event as dispatched.
func (s *Store) MarkProcessed(ctx context.Context, eventID string, processedOn time.Time) error {
	mut := s.model.MarkProcessedMut(eventID, processedOn)
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("mark inbox event %s processed: %w", eventID, err)
	}
	return nil
}
