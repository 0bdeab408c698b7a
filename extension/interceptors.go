package extension

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/metrics"
)

const requestIDKey = "x-request-id"

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}

func withRequestLogger(ctx context.Context, base logr.Logger, method string) (context.Context, logr.Logger) {
	logger := base.WithValues("method", method, "request-id", requestID(ctx))
	return log.IntoContext(ctx, logger), logger
}

func recovered(logger logr.Logger, r any) error {
	err := fmt.Errorf("panic: %v", r)
	logger.Error(err, "recovered")
	return status.Error(codes.Internal, "internal error")
}

func completed(logger logr.Logger, method string, start time.Time, err error) {
	code := status.Code(err)
	metrics.GRPCRequestHandled(method, code.String())
	if err != nil {
		logger.Error(err, "request failed", "code", code.String(), "duration", time.Since(start))
		return
	}
	logger.V(1).Info("request completed", "duration", time.Since(start))
}

// UnaryServerInterceptor attaches a request scoped logger, recovers panics and records metrics
func UnaryServerInterceptor(base logr.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		ctx, logger := withRequestLogger(ctx, base, info.FullMethod)
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				resp, err = nil, recovered(logger, r)
			}
			completed(logger, info.FullMethod, start, err)
		}()
		return handler(ctx, req)
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor
func StreamServerInterceptor(base logr.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		ctx, logger := withRequestLogger(ss.Context(), base, info.FullMethod)
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				err = recovered(logger, r)
			}
			completed(logger, info.FullMethod, start, err)
		}()
		return handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
	}
}

type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}
