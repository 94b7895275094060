package health

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/second-brain/internal/logger"
)

// ServiceName is the name the service registers under in grpc.health.v1.
const ServiceName = "second-brain"

// GRPCServer exposes the checker through the standard gRPC health service.
type GRPCServer struct {
	server  *grpc.Server
	health  *grpchealth.Server
	checker *Checker
}

func NewGRPCServer(checker *Checker) *GRPCServer {
	hs := grpchealth.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &GRPCServer{
		server:  srv,
		health:  hs,
		checker: checker,
	}
}

// Refresh runs the checks once and publishes the result.
func (s *GRPCServer) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if !s.checker.Check(ctx).Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Watch refreshes the status every interval until ctx is done.
func (s *GRPCServer) Watch(ctx context.Context, interval time.Duration) {
	s.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Serve blocks serving lis until Stop is called.
func (s *GRPCServer) Serve(lis net.Listener) error {
	logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
	return s.server.Serve(lis)
}

// Stop marks every service as not serving and stops the server gracefully.
func (s *GRPCServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
