package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pinger is satisfied by *pgxpool.Pool and by *email.SMTPSender.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level health response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

type dependency struct {
	name   string
	pinger Pinger
}

// Checker verifies that every registered dependency is reachable.
type Checker struct {
	deps   []dependency
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "comms",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Add registers a dependency probed by Readiness. Checks run in the order added.
func (c *Checker) Add(name string, p Pinger) *Checker {
	c.deps = append(c.deps, dependency{name: name, pinger: p})
	return c
}

// Liveness returns a simple "up" response if the process is running.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness pings every dependency and reports per-check status.
func (c *Checker) Readiness(ctx context.Context) HealthResult {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult, len(c.deps)),
	}

	for _, dep := range c.deps {
		if err := dep.pinger.Ping(checkCtx); err != nil {
			c.logger.Warn("health check failed", "dependency", dep.name, "error", err)
			result.Status = "down"
			result.Checks[dep.name] = CheckResult{Status: "down", Error: err.Error()}
			c.gauge.WithLabelValues(dep.name).Set(0)
			continue
		}
		result.Checks[dep.name] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues(dep.name).Set(1)
	}

	return result
}
