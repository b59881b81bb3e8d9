package middleware

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/foden303/moderation/internal/metrics"
)

// UnaryMetrics records a Prometheus latency observation for every unary call,
// labeled by full method name and status code, and logs failed calls with the
// request ID for correlation.
func UnaryMetrics() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		code := "OK"
		if err != nil {
			code = "Unknown"
			if st, ok := status.FromError(err); ok {
				code = st.Code().String()
			}
			log.Printf("rpc %s failed request_id=%s code=%s: %v", info.FullMethod, RequestID(ctx), code, err)
		}

		metrics.RecordGRPCLatency(info.FullMethod, code, time.Since(start).Seconds())

		return resp, err
	}
}
