package committer

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/models/m_outbox"
	"github.com/light-bringer/booking-service/internal/pkg/clock"
)

// UnitOfWork extends a CommitPlan with domain event draining. Usecases
// register the aggregates they touched; on Commit every pending domain
// event becomes an outbox row in the same transaction as the state
// mutations, which is what makes event publication exactly as durable as
// the change that caused it.
type UnitOfWork struct {
	plan       *CommitPlan
	aggregates []shared.Aggregate

	applier  Applier
	outbox   *m_outbox.Model
	clockSvc clock.Clock
}

// NewUnitOfWork creates a UnitOfWork committing through the given applier.
func NewUnitOfWork(applier Applier, clockSvc clock.Clock) *UnitOfWork {
	return &UnitOfWork{
		plan:     NewPlan(),
		applier:  applier,
		outbox:   m_outbox.NewModel(),
		clockSvc: clockSvc,
	}
}

// Add adds a state mutation to the underlying plan.
func (u *UnitOfWork) Add(mut *spanner.Mutation) {
	u.plan.Add(mut)
}

// AddMultiple adds multiple state mutations to the underlying plan.
func (u *UnitOfWork) AddMultiple(muts []*spanner.Mutation) {
	u.plan.AddMultiple(muts)
}

// Track registers an aggregate whose domain events must be drained into
// the outbox at commit time.
func (u *UnitOfWork) Track(agg shared.Aggregate) {
	if agg != nil {
		u.aggregates = append(u.aggregates, agg)
	}
}

// Plan exposes the collected mutations, outbox rows not yet included.
func (u *UnitOfWork) Plan() *CommitPlan {
	return u.plan
}

// Commit drains tracked aggregates into outbox insert mutations and
// applies the whole plan atomically. Aggregate event buffers are cleared
// only after the commit succeeds.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := u.drainEvents(); err != nil {
		return err
	}

	if err := u.applier.Apply(ctx, u.plan); err != nil {
		return err
	}

	for _, agg := range u.aggregates {
		agg.ClearDomainEvents()
	}
	return nil
}

func (u *UnitOfWork) drainEvents() error {
	now := u.clockSvc.Now()

	for _, agg := range u.aggregates {
		for _, event := range agg.DomainEvents() {
			content, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("marshal event %s: %w", event.ID(), err)
			}

			var payload spanner.NullJSON
			if err := json.Unmarshal(content, &payload.Value); err != nil {
				return fmt.Errorf("encode event %s: %w", event.ID(), err)
			}
			payload.Valid = true

			u.plan.Add(u.outbox.InsertMut(&m_outbox.Data{
				EventID:    event.ID(),
				EventType:  event.Type(),
				Content:    payload,
				OccurredOn: now,
			}))
		}
	}
	return nil
}
