package middleware

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUnaryRequestIDGeneratesUUID(t *testing.T) {
	interceptor := UnaryRequestID()

	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return "ok", nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/nsfw_image.v1.NSFWImageDetector/Predict"}
	if _, err := interceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}

	id := RequestID(seen)
	if id == "" {
		t.Fatal("expected a generated request ID")
	}
	if len(id) != 36 {
		t.Errorf("expected UUID format, got %q", id)
	}
}

func TestUnaryRequestIDPreservesCallerID(t *testing.T) {
	interceptor := UnaryRequestID()

	var seen context.Context
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = ctx
		return "ok", nil
	}

	md := metadata.Pairs(RequestIDHeader, "caller-supplied-id")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/nsfw_image.v1.NSFWImageDetector/Predict"}

	if _, err := interceptor(ctx, nil, info, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if got := RequestID(seen); got != "caller-supplied-id" {
		t.Errorf("expected caller-supplied-id, got %q", got)
	}
}

func TestRequestIDEmptyContext(t *testing.T) {
	if id := RequestID(context.Background()); id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}

func TestUnaryMetricsPassesThrough(t *testing.T) {
	interceptor := UnaryMetrics()
	info := &grpc.UnaryServerInfo{FullMethod: "/nsfw_text.v1.NSFWTextDetector/Predict"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "resp" {
		t.Errorf("expected handler response, got %v", resp)
	}

	wantErr := status.Error(codes.InvalidArgument, "bad input")
	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to propagate, got %v", err)
	}
}
