package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/psiarze/internal/health"
)

// HealthProber checks the service dependencies.
type HealthProber interface {
	Probe(ctx context.Context) health.Report
}

// NewHealthHandler reports liveness and database reachability.
// @Summary Health
// @Tags health
// @Produce json
// @Success 200 {object} health.Report
// @Failure 503 {object} health.Report "Database unreachable"
// @Router /health [get]
func NewHealthHandler(prober HealthProber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := prober.Probe(r.Context())

		code := http.StatusOK
		if !report.Healthy() {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, report)
	}
}
