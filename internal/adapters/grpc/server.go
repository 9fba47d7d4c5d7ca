package grpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer exposes the standard grpc.health.v1 service so mesh-level
// probes can check this service the same way they check every other one.
// Scoring has no gRPC surface of its own; health is the whole contract.
type HealthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	server *grpc.Server
}

func NewHealthServer() *HealthServer {
	s := &HealthServer{server: grpc.NewServer()}
	grpc_health_v1.RegisterHealthServer(s.server, s)
	return s
}

func (s *HealthServer) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	_ = ctx
	_ = req
	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}

func (s *HealthServer) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	_ = req
	return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING})
}

// Serve blocks until the listener fails or GracefulStop is called.
func (s *HealthServer) Serve(port int) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	return s.server.Serve(listener)
}

func (s *HealthServer) GracefulStop() {
	s.server.GracefulStop()
}
