package booking

import (
	"context"

	"github.com/light-bringer/booking-service/internal/app/booking/usecases/book_vehicle"
	"github.com/light-bringer/booking-service/internal/app/booking/usecases/cancel_booking"
	pb "github.com/light-bringer/booking-service/proto/booking/v1"
)

// Handler implements the gRPC BookingService interface.
// It's a thin coordinator that delegates to use cases.
type Handler struct {
	pb.UnimplementedBookingServiceServer

	bookVehicle   *book_vehicle.Interactor
	cancelBooking *cancel_booking.Interactor
}

// NewHandler creates a new gRPC booking handler.
func NewHandler(
	bookVehicle *book_vehicle.Interactor,
	cancelBooking *cancel_booking.Interactor,
) *Handler {
	return &Handler{
		bookVehicle:   bookVehicle,
		cancelBooking: cancelBooking,
	}
}

// BookVehicle starts a booking for a customer and vehicle.
func (h *Handler) BookVehicle(ctx context.Context, req *pb.BookVehicleRequest) (*pb.BookVehicleReply, error) {
	if err := validateBookVehicleRequest(req); err != nil {
		return nil, err
	}

	appReq := &book_vehicle.Request{
		CustomerID: req.CustomerId,
		VehicleID:  req.VehicleId,
	}

	bookingID, err := h.bookVehicle.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.BookVehicleReply{BookingId: bookingID}, nil
}

// CancelBooking cancels a booked vehicle at the customer's request.
func (h *Handler) CancelBooking(ctx context.Context, req *pb.CancelBookingRequest) (*pb.CancelBookingReply, error) {
	if err := validateCancelBookingRequest(req); err != nil {
		return nil, err
	}

	appReq := &cancel_booking.Request{
		BookingID: req.BookingId,
	}

	if err := h.cancelBooking.Execute(ctx, appReq); err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.CancelBookingReply{}, nil
}
