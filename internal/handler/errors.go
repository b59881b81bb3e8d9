package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/foden303/moderation/internal/batch"
	"github.com/foden303/moderation/internal/fetch"
)

// grpcError maps internal errors to gRPC status errors.
func grpcError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fetch.ErrInvalidContentType):
		return status.Errorf(codes.InvalidArgument, "unsupported content type: %v", err)

	case errors.Is(err, fetch.ErrDecode):
		return status.Errorf(codes.InvalidArgument, "undecodable input: %v", err)

	case errors.Is(err, fetch.ErrDownload):
		return status.Errorf(codes.Unavailable, "input download failed: %v", err)

	case errors.Is(err, batch.ErrClosed):
		return status.Errorf(codes.Unavailable, "service is shutting down")

	case errors.Is(err, batch.ErrBackend):
		return status.Errorf(codes.Internal, "inference failed: %v", err)

	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "request canceled")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "request deadline exceeded")

	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}

// invalidArgumentError creates an InvalidArgument gRPC error.
func invalidArgumentError(format string, args ...interface{}) error {
	return status.Errorf(codes.InvalidArgument, format, args...)
}

// unavailableError creates an Unavailable gRPC error.
func unavailableError(format string, args ...interface{}) error {
	return status.Errorf(codes.Unavailable, format, args...)
}
