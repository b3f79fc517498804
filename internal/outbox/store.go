// Package outbox reads and settles the outbox side of the transactional
// outbox pattern. Rows are written by the unit of work inside domain
// transactions; this package only ever reads pending rows and marks them
// processed once the relay has published and reacted to them.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/booking-service/internal/models/m_outbox"
	"github.com/light-bringer/booking-service/internal/pkg/query"
)

// Event is a stored outbox row ready for relaying.
type Event struct {
	EventID    string
	EventType  string
	Content    json.RawMessage
	OccurredOn time.Time
}

// Store provides pending-row access to the outbox table.
type Store struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewStore creates a new outbox Store.
func NewStore(client *spanner.Client) *Store {
	return &Store{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// Pending retrieves unprocessed events in occurrence order, capped at limit.
// Occurrence order is what keeps events of one aggregate in causal order
// on the broker.
func (s *Store) Pending(ctx context.Context, limit int64) ([]*Event, error) {
	stmt := query.From(m_outbox.TableName).
		Select(s.model.ReadColumns()...).
		Where(query.IsNull(m_outbox.ProcessedOn)).
		OrderBy(m_outbox.OccurredOn, query.Asc).
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
			return nil, fmt.Errorf("query pending outbox events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse outbox event: %w", err)
		}

		event, err := dataToEvent(&data)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// MarkProcessed stamps an event as relayed.
func (s *Store) MarkProcessed(ctx context.Context, eventID string, processedOn time.Time) error {
	mut := s.model.MarkProcessedMut(eventID, processedOn)
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("mark outbox event %s processed: %w", eventID, err)
	}
	return nil
}

func dataToEvent(data *m_outbox.Data) (*Event, error) {
	content, err := json.Marshal(data.Content.Value)
	if err != nil {
		return nil, fmt.Errorf("decode outbox event %s content: %w", data.EventID, err)
	}

	return &Event{
		EventID:    data.EventID,
		EventType:  data.EventType,
		Content:    content,
		OccurredOn: data.OccurredOn,
	}, nil
}
