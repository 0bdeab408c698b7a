package extension

import (
	"context"
	"net"

	"github.com/go-logr/logr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/suffiks/ingress-extension/pkg/grpc/extension"
)

// NewServer creates a gRPC server with the extension, health and reflection services registered
func NewServer(h pb.ExtensionServer, logger logr.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(logger)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor(logger)),
	)
	srv := grpc.NewServer(opts...)
	pb.RegisterExtensionServer(srv, h)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Extension_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	reflection.Register(srv)
	return srv
}

// Serve accepts connections on the listener until the context is canceled,
// then stops gracefully letting in-flight requests complete
func Serve(ctx context.Context, srv *grpc.Server, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	return srv.Serve(lis)
}
