// Package health reports whether the service dependencies answer.
// The same checks back the HTTP /healthz endpoint and the gRPC health service.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/sbilibin2017/second-brain/internal/logger"
)

// Check statuses
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// Report is the outcome of running every check.
// swagger:model HealthReport
type Report struct {
	Status string            `json:"status"` // up when every check passed
	Checks map[string]string `json:"checks"` // per dependency: up, or the error text
}

// Healthy tells whether every check passed.
func (r Report) Healthy() bool {
	return r.Status == StatusUp
}

// Checker runs named dependency checks with a per-check timeout.
type Checker struct {
	checks  map[string]CheckFunc
	timeout time.Duration
}

func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
	}
}

// Register adds a check under name. Not safe to call once checks are running.
func (c *Checker) Register(name string, check CheckFunc) *Checker {
	c.checks[name] = check
	return c
}

// Check runs every registered check.
func (c *Checker) Check(ctx context.Context) Report {
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	report := Report{Status: StatusUp, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := c.checks[name](checkCtx)
		cancel()

		if err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			report.Status = StatusDown
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = StatusUp
	}
	return report
}

// NewHandler returns the /healthz handler.
//
// @Summary Service health
// @Description Pings Postgres and Redis
// @Tags health
// @Produce json
// @Success 200 {object} Report
// @Failure 503 {object} Report
// @Router /healthz [get]
func NewHandler(checker *Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := checker.Check(r.Context())

		status := http.StatusOK
		if !report.Healthy() {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(report)
	}
}
