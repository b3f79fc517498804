package booking

import (
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/booking-service/proto/booking/v1"
)

// validateBookVehicleRequest validates the BookVehicle request.
func validateBookVehicleRequest(req *pb.BookVehicleRequest) error {
	if req.CustomerId == "" {
		return status.Error(codes.InvalidArgument, "customer_id is required")
	}
	if _, err := uuid.Parse(req.CustomerId); err != nil {
		return status.Error(codes.InvalidArgument, "customer_id must be a valid UUID")
	}
	if req.VehicleId == "" {
		return status.Error(codes.InvalidArgument, "vehicle_id is required")
	}
	if _, err := uuid.Parse(req.VehicleId); err != nil {
		return status.Error(codes.InvalidArgument, "vehicle_id must be a valid UUID")
	}
	return nil
}

// validateCancelBookingRequest validates the CancelBooking request.
func validateCancelBookingRequest(req *pb.CancelBookingRequest) error {
	if req.BookingId == "" {
		return status.Error(codes.InvalidArgument, "booking_id is required")
	}
	if _, err := uuid.Parse(req.BookingId); err != nil {
		return status.Error(codes.InvalidArgument, "booking_id must be a valid UUID")
	}
	return nil
}
