package adapter

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// grpcHealthChecker queries the standard gRPC health service of the settings
// server.
type grpcHealthChecker struct {
	conn   *grpc.ClientConn
	client healthpb.HealthClient
}

// NewGRPCHealthChecker dials address lazily; the first Check establishes the
// connection.
func NewGRPCHealthChecker(address string, opts ...grpc.DialOption) (HealthChecker, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcHealthChecker{conn: conn, client: healthpb.NewHealthClient(conn)}, nil
}

// Check implements [HealthChecker].
func (g *grpcHealthChecker) Check(ctx context.Context) error {
	resp, err := g.client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: %s", ErrNotServing, resp.GetStatus())
	}
	return nil
}

// Close implements [HealthChecker].
func (g *grpcHealthChecker) Close() error {
	return g.conn.Close()
}
