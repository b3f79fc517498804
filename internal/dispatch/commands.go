package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/light-bringer/booking-service/internal/app/booking/usecases/complete_booking"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/process_occupation"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/add_customer"
	"github.com/light-bringer/booking-service/internal/app/customer/usecases/revoke_booking_rights"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/add_vehicle"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/add_vehicle_model"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/change_model_category"
	"github.com/light-bringer/booking-service/internal/app/vehicle/usecases/delete_vehicle"
	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// Commands bundles the interactors the inbound registry routes to.
type Commands struct {
	AddCustomer         *add_customer.Interactor
	RevokeBookingRights *revoke_booking_rights.Interactor
	AddVehicleModel     *add_vehicle_model.Interactor
	ChangeModelCategory *change_model_category.Interactor
	CompleteBooking     *complete_booking.Interactor
	ProcessOccupation   *process_occupation.Interactor
	AddVehicle          *add_vehicle.Interactor
	DeleteVehicle       *delete_vehicle.Interactor
}

// NewInboundRegistry builds the full event-type-to-command mapping.
func NewInboundRegistry(c Commands) *Registry {
	r := NewRegistry()

	r.Register(EventTypeLicenseApproved, func(ctx context.Context, content json.RawMessage) error {
		var p LicenseApprovedPayload
		if err := decode(EventTypeLicenseApproved, content, &p); err != nil {
			return err
		}
		if p.AccountID == "" {
			return missingField(EventTypeLicenseApproved, "account_id")
		}
		return c.AddCustomer.Execute(ctx, &add_customer.Request{
			CustomerID: p.AccountID,
			Categories: p.Categories,
		})
	})

	r.Register(EventTypeLicenseExpired, func(ctx context.Context, content json.RawMessage) error {
		var p LicenseExpiredPayload
		if err := decode(EventTypeLicenseExpired, content, &p); err != nil {
			return err
		}
		if p.AccountID == "" {
			return missingField(EventTypeLicenseExpired, "account_id")
		}
		return c.RevokeBookingRights.Execute(ctx, &revoke_booking_rights.Request{
			CustomerID: p.AccountID,
		})
	})

	r.Register(EventTypeModelCreated, func(ctx context.Context, content json.RawMessage) error {
		var p ModelCreatedPayload
		if err := decode(EventTypeModelCreated, content, &p); err != nil {
			return err
		}
		if p.ModelID == "" {
			return missingField(EventTypeModelCreated, "model_id")
		}
		return c.AddVehicleModel.Execute(ctx, &add_vehicle_model.Request{
			ModelID:  p.ModelID,
			Category: p.Category,
		})
	})

	r.Register(EventTypeModelCategory, func(ctx context.Context, content json.RawMessage) error {
		var p ModelCategoryUpdatedPayload
		if err := decode(EventTypeModelCategory, content, &p); err != nil {
			return err
		}
		if p.ModelID == "" {
			return missingField(EventTypeModelCategory, "model_id")
		}
		return c.ChangeModelCategory.Execute(ctx, &change_model_category.Request{
			ModelID:  p.ModelID,
			Category: p.Category,
		})
	})

	r.Register(EventTypeCheckingStarted, func(ctx context.Context, content json.RawMessage) error {
		var p CheckingStartedPayload
		if err := decode(EventTypeCheckingStarted, content, &p); err != nil {
			return err
		}
		if p.BookingID == "" {
			return missingField(EventTypeCheckingStarted, "booking_id")
		}
		return c.CompleteBooking.Execute(ctx, &complete_booking.Request{
			BookingID: p.BookingID,
		})
	})

	r.Register(EventTypeOccupyingProcessed, func(ctx context.Context, content json.RawMessage) error {
		var p OccupyingProcessedPayload
		if err := decode(EventTypeOccupyingProcessed, content, &p); err != nil {
			return err
		}
		if p.BookingID == "" {
			return missingField(EventTypeOccupyingProcessed, "booking_id")
		}
		return c.ProcessOccupation.Execute(ctx, &process_occupation.Request{
			BookingID:  p.BookingID,
			IsOccupied: p.IsOccupied,
		})
	})

	r.Register(EventTypeVehicleAdded, func(ctx context.Context, content json.RawMessage) error {
		var p VehicleAddedPayload
		if err := decode(EventTypeVehicleAdded, content, &p); err != nil {
			return err
		}
		if p.VehicleID == "" {
			return missingField(EventTypeVehicleAdded, "vehicle_id")
		}
		return c.AddVehicle.Execute(ctx, &add_vehicle.Request{
			VehicleID: p.VehicleID,
			ModelID:   p.ModelID,
		})
	})

	r.Register(EventTypeVehicleDeleted, func(ctx context.Context, content json.RawMessage) error {
		var p VehicleDeletedPayload
		if err := decode(EventTypeVehicleDeleted, content, &p); err != nil {
			return err
		}
		if p.VehicleID == "" {
			return missingField(EventTypeVehicleDeleted, "vehicle_id")
		}
		return c.DeleteVehicle.Execute(ctx, &delete_vehicle.Request{
			VehicleID: p.VehicleID,
		})
	})

	return r
}

func decode(eventType string, content json.RawMessage, out interface{}) error {
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("decode %s payload: %w", eventType, err)
	}
	return nil
}

func missingField(eventType, field string) error {
	return fmt.Errorf("%w: %s payload has no %s", shared.ErrValueIsRequired, eventType, field)
}
