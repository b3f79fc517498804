package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/booking-service/internal/app/booking/contracts"
	"github.com/light-bringer/booking-service/internal/domain/booking"
	"github.com/light-bringer/booking-service/internal/domain/shared"
	"github.com/light-bringer/booking-service/internal/models/m_booking"
	"github.com/light-bringer/booking-service/internal/pkg/query"
)

// freeWaitElapsed is the SQL expression for the moment a booking's
// free-wait window ends.
const freeWaitElapsed = "TIMESTAMP_ADD(" + m_booking.StartOn + ", INTERVAL " + m_booking.FreeWaitSeconds + " SECOND)"

// BookingRepo implements BookingRepository for Spanner.
type BookingRepo struct {
	client *spanner.Client
	model  *m_booking.Model
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(client *spanner.Client) contracts.BookingRepository {
	return &BookingRepo{
		client: client,
		model:  m_booking.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new booking.
func (r *BookingRepo) InsertMut(b *booking.Booking) *spanner.Mutation {
	return r.model.InsertMut(domainToData(b))
}

// UpdateMut creates a mutation covering only dirty fields.
func (r *BookingRepo) UpdateMut(b *booking.Booking) *spanner.Mutation {
	changes := b.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(booking.FieldStatus) {
		updates[m_booking.StatusID] = int64(b.Status())
	}
	if changes.Dirty(booking.FieldStart) {
		updates[m_booking.StartOn] = nullTime(b.Start())
	}
	if changes.Dirty(booking.FieldEnd) {
		updates[m_booking.EndOn] = nullTime(b.End())
	}

	return r.model.UpdateMut(b.ID(), updates)
}

// GetByID retrieves a booking by ID, reconstructing the domain aggregate.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*booking.Booking, error) {
	row, err := r.client.Single().ReadRow(ctx, m_booking.TableName, spanner.Key{bookingID}, r.model.ReadColumns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, shared.NotFound(fmt.Sprintf("booking %s", bookingID))
		}
		return nil, fmt.Errorf("read booking: %w", err)
	}

	var data m_booking.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("parse booking: %w", err)
	}

	return dataToDomain(&data)
}

// HasLiveBooking reports whether the customer already has an InProcess or
// Booked booking for the vehicle.
func (r *BookingRepo) HasLiveBooking(ctx context.Context, customerID, vehicleID string) (bool, error) {
	stmt := query.From(m_booking.TableName).
		Select(m_booking.BookingID).
		Where(query.Eq(m_booking.CustomerID, customerID)).
		Where(query.Eq(m_booking.VehicleID, vehicleID)).
		Where(query.In(m_booking.StatusID, []int64{
			int64(booking.StatusInProcess),
			int64(booking.StatusBooked),
		})).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query live bookings: %w", err)
	}
	return true, nil
}

// ListFreeWaitExpired retrieves booked bookings whose free-wait window
// elapsed at or before now, oldest first.
func (r *BookingRepo) ListFreeWaitExpired(ctx context.Context, now time.Time, limit int64) ([]*booking.Booking, error) {
	stmt := query.From(m_booking.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_booking.StatusID, int64(booking.StatusBooked))).
		Where(query.Lte(freeWaitElapsed, now)).
		OrderBy(m_booking.StartOn, query.Asc).
		Limit(limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var bookings []*booking.Booking
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query expired bookings: %w", err)
		}

		var data m_booking.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("parse booking: %w", err)
		}

		b, err := dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func domainToData(b *booking.Booking) *m_booking.Data {
	return &m_booking.Data{
		BookingID:       b.ID(),
		CustomerID:      b.CustomerID(),
		VehicleID:       b.VehicleID(),
		StatusID:        int64(b.Status()),
		FreeWaitSeconds: int64(b.FreeWait().Duration() / time.Second),
		StartOn:         nullTime(b.Start()),
		EndOn:           nullTime(b.End()),
	}
}

func dataToDomain(data *m_booking.Data) (*booking.Booking, error) {
	status, err := booking.StatusFromID(data.StatusID)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", data.BookingID, err)
	}

	var start, end *time.Time
	if data.StartOn.Valid {
		start = &data.StartOn.Time
	}
	if data.EndOn.Valid {
		end = &data.EndOn.Time
	}

	return booking.ReconstructBooking(
		data.BookingID,
		data.CustomerID,
		data.VehicleID,
		status,
		shared.FreeWaitFromDuration(time.Duration(data.FreeWaitSeconds)*time.Second),
		start,
		end,
	), nil
}

func nullTime(t *time.Time) spanner.NullTime {
	if t == nil {
		return spanner.NullTime{}
	}
	return spanner.NullTime{Time: *t, Valid: true}
}
