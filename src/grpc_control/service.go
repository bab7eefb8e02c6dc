package grpc_control

import (
	"context"
	"fmt"
	"net"

	"stock-backend/src/logger"
	"stock-backend/src/models"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Service names reported through grpc.health.v1.
const (
	ServiceQuotes    = "quotes"
	ServiceSentiment = "sentiment"
)

// ControlServer exposes process and component health over gRPC.
type ControlServer struct {
	Address string
	Logger  *logger.Logger
	Health  *health.Server
	server  *grpc.Server
}

// -----------------------------------------------------------------------------

func NewControlServer(cfg *models.MConfig, log *logger.Logger) *ControlServer {
	port := cfg.GrpcPort
	if port == 0 {
		port = 50051
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceQuotes, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceSentiment, healthpb.HealthCheckResponse_NOT_SERVING)

	return &ControlServer{
		Address: fmt.Sprintf("%s:%d", cfg.GrpcHost, port),
		Logger:  log.Named("ControlServer"),
		Health:  hs,
		server:  gs,
	}
}

// -----------------------------------------------------------------------------

// SetIndexLoaded flips the sentiment service status. Used as the index
// loader callback.
func (s *ControlServer) SetIndexLoaded(loaded bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if loaded {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.Health.SetServingStatus(ServiceSentiment, status)
}

// -----------------------------------------------------------------------------

// Start listens on Address and serves until Stop.
func (s *ControlServer) Start() error {
	lis, err := net.Listen("tcp", s.Address)
	if err != nil {
		return fmt.Errorf("listen for gRPC on %s: %w", s.Address, err)
	}
	return s.Serve(lis)
}

// Serve runs on an existing listener.
func (s *ControlServer) Serve(lis net.Listener) error {
	s.Logger.Info("Starting gRPC control server on %s", lis.Addr())
	if err := s.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------

// Stop marks everything NOT_SERVING and drains RPCs, forcing the stop once
// ctx is done.
func (s *ControlServer) Stop(ctx context.Context) {
	s.Health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.Logger.Warning("gRPC graceful stop timed out, forcing")
		s.server.Stop()
	}
}
