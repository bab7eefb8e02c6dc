package grpc_control

import (
	"context"
	"net"
	"testing"
	"time"

	"stock-backend/src/logger"
	"stock-backend/src/models"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startControlServer(t *testing.T) (*ControlServer, healthpb.HealthClient) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewControlServer(&models.MConfig{}, logger.NewNopLogger())
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})
	return srv, healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthReflectsIndexState(t *testing.T) {
	t.Parallel()

	srv, client := startControlServer(t)

	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceQuotes))
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceSentiment))

	srv.SetIndexLoaded(true)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceSentiment))

	srv.SetIndexLoaded(false)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceSentiment))
}

func TestDefaultAddress(t *testing.T) {
	t.Parallel()

	cfg := &models.MConfig{GrpcHost: "127.0.0.1"}
	require.Equal(t, "127.0.0.1:50051", NewControlServer(cfg, logger.NewNopLogger()).Address)

	cfg.GrpcPort = 6000
	require.Equal(t, "127.0.0.1:6000", NewControlServer(cfg, logger.NewNopLogger()).Address)
}
