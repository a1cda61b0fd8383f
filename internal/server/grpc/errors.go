package grpc

import (
	"errors"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes. Anything it does not
// recognise, storage failures included, becomes a generic Internal error.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	var fe *common.ForbiddenError
	var ve *common.ValidationError

	switch {
	case errors.Is(err, common.ErrorUnauthenticated):
		return status.Error(codes.Unauthenticated, "login required: "+common.LoginEntryPoint)
	case errors.As(err, &fe):
		return status.Error(codes.PermissionDenied, fe.Reason)
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Message)
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
