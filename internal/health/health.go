// Package health reports service liveness over HTTP and gRPC from one database probe.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/psiarze/internal/logger"
)

// ServiceName is the gRPC health service name answered besides "".
const ServiceName = "psiarze"

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	DatabaseUp   = "ok"
	DatabaseDown = "unavailable"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Report is the result of one probe.
type Report struct {
	Status   string `json:"status"`
	App      string `json:"app"`
	Env      string `json:"env"`
	Database string `json:"database"`
}

// Healthy reports whether every dependency answered.
func (r Report) Healthy() bool { return r.Status == StatusOK }

// Checker probes the database. It also implements the gRPC health service.
type Checker struct {
	healthpb.UnimplementedHealthServer

	db      Pinger
	app     string
	env     string
	timeout time.Duration
}

// NewChecker creates a Checker labelled with the app name and environment.
func NewChecker(db Pinger, app, env string) *Checker {
	return &Checker{db: db, app: app, env: env, timeout: 2 * time.Second}
}

// Probe pings the database.
func (c *Checker) Probe(ctx context.Context) Report {
	report := Report{Status: StatusOK, App: c.app, Env: c.env, Database: DatabaseUp}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		logger.Log.Errorw("database health check failed", "error", err)
		report.Status = StatusDegraded
		report.Database = DatabaseDown
	}
	return report
}

// Check implements grpc.health.v1.Health.
func (c *Checker) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	resp := &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}
	if !c.Probe(ctx).Healthy() {
		resp.Status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	return resp, nil
}

// Register exposes c on s.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c)
}
