// Package middleware provides gRPC unary server interceptors.
package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader is the metadata key carrying the request ID.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// UnaryRequestID propagates an x-request-id from incoming metadata, minting a
// fresh UUID when the caller did not send one. The ID is placed on the request
// context and echoed back as a response header.
func UnaryRequestID() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		id := incomingRequestID(ctx)
		if id == "" {
			id = uuid.New().String()
		}

		ctx = context.WithValue(ctx, requestIDKey{}, id)

		// Best effort; the header may already be committed.
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vals := md.Get(RequestIDHeader); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// RequestID returns the request ID stored on ctx, or "" if none is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
