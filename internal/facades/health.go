package facades

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sbilibin2017/psiarze/internal/logger"
)

// HealthGRPCFacade asks a running instance for its status over the gRPC health protocol.
type HealthGRPCFacade struct {
	client  healthpb.HealthClient
	service string
}

// NewHealthGRPCFacade creates a facade checking service through client.
func NewHealthGRPCFacade(client healthpb.HealthClient, service string) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client, service: service}
}

// Serving reports whether the remote side answers SERVING.
func (f *HealthGRPCFacade) Serving(ctx context.Context) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: f.service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", f.service, "error", err)
		return false, err
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
