package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/booking-service/internal/domain/shared"
	pb "github.com/light-bringer/booking-service/proto/booking/v1"
)

func TestMapDomainErrorToGRPC(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", shared.NotFound("booking not found"), codes.NotFound},
		{"duplicate live booking", shared.Conflict("customer already has a live booking"), codes.AlreadyExists},
		{"commit failed", shared.CommitFailure(errors.New("aborted")), codes.Unavailable},
		{"same state", shared.ErrAlreadyInThisState, codes.InvalidArgument},
		{"rule violation", shared.DomainRuleViolation("booking rights revoked"), codes.InvalidArgument},
		{"consistency violation", shared.DataConsistencyViolation("vehicle without model"), codes.Internal},
		{"required value", fmt.Errorf("%w: customer id", shared.ErrValueIsRequired), codes.InvalidArgument},
		{"unknown error", errors.New("socket closed"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, ok := status.FromError(mapDomainErrorToGRPC(tc.err))
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
		})
	}

	assert.NoError(t, mapDomainErrorToGRPC(nil))
}

func TestValidateBookVehicleRequest(t *testing.T) {
	valid := &pb.BookVehicleRequest{
		CustomerId: "9f3f1f1e-7d1c-4f7d-9b34-0a4f6f2a1c11",
		VehicleId:  "0b7a4f0d-9a2a-4c77-8f2e-2d4c9e8b5a22",
	}
	assert.NoError(t, validateBookVehicleRequest(valid))

	cases := []struct {
		name string
		req  *pb.BookVehicleRequest
	}{
		{"missing customer id", &pb.BookVehicleRequest{VehicleId: valid.VehicleId}},
		{"missing vehicle id", &pb.BookVehicleRequest{CustomerId: valid.CustomerId}},
		{"malformed customer id", &pb.BookVehicleRequest{CustomerId: "not-a-uuid", VehicleId: valid.VehicleId}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBookVehicleRequest(tc.req)
			require.Error(t, err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
		})
	}
}

func TestValidateCancelBookingRequest(t *testing.T) {
	assert.NoError(t, validateCancelBookingRequest(&pb.CancelBookingRequest{
		BookingId: "9f3f1f1e-7d1c-4f7d-9b34-0a4f6f2a1c11",
	}))

	err := validateCancelBookingRequest(&pb.CancelBookingRequest{})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
