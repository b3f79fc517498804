package booking

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/booking-service/internal/domain/shared"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, shared.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, shared.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, shared.ErrCommitFailed):
		return status.Error(codes.Unavailable, "storage commit failed")

	case errors.Is(err, shared.ErrDataConsistencyViolation):
		return status.Error(codes.Internal, err.Error())

	// Rule violations surface as invalid arguments: the caller named a
	// booking that cannot take the requested transition.
	case errors.Is(err, shared.ErrAlreadyInThisState),
		errors.Is(err, shared.ErrDomainRuleViolation),
		errors.Is(err, shared.ErrValueIsRequired),
		errors.Is(err, shared.ErrValueOutOfRange):
		return status.Error(codes.InvalidArgument, err.Error())

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
