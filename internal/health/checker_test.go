package health_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ErlanBelekov/communication-service/internal/health"
	"github.com/prometheus/client_golang/prometheus"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func newTestChecker() (*health.Checker, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return health.NewChecker(slog.Default(), reg), reg
}

func TestLiveness_AlwaysUp(t *testing.T) {
	c, _ := newTestChecker()
	c.Add("postgres", &mockPinger{err: errors.New("db down")})

	result := c.Liveness(context.Background())
	if result.Status != "up" {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	if result.Checks != nil {
		t.Fatalf("expected no checks, got %v", result.Checks)
	}
}

func TestReadiness_AllUp(t *testing.T) {
	c, reg := newTestChecker()
	c.Add("postgres", &mockPinger{}).Add("smtp", &mockPinger{})

	result := c.Readiness(context.Background())
	if result.Status != "up" {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	for _, dep := range []string{"postgres", "smtp"} {
		if got := result.Checks[dep].Status; got != "up" {
			t.Fatalf("expected %s up, got %q", dep, got)
		}
		if gauge := testGauge(t, reg, "comms_health_check_up", dep); gauge != 1 {
			t.Fatalf("expected %s gauge 1, got %f", dep, gauge)
		}
	}
}

func TestReadiness_OneDependencyDown(t *testing.T) {
	c, reg := newTestChecker()
	c.Add("postgres", &mockPinger{}).Add("smtp", &mockPinger{err: errors.New("connection refused")})

	result := c.Readiness(context.Background())
	if result.Status != "down" {
		t.Fatalf("expected status down, got %s", result.Status)
	}
	if result.Checks["postgres"].Status != "up" {
		t.Fatalf("expected postgres up, got %s", result.Checks["postgres"].Status)
	}
	smtp := result.Checks["smtp"]
	if smtp.Status != "down" {
		t.Fatalf("expected smtp down, got %s", smtp.Status)
	}
	if smtp.Error == "" {
		t.Fatal("expected error message")
	}

	if gauge := testGauge(t, reg, "comms_health_check_up", "smtp"); gauge != 0 {
		t.Fatalf("expected gauge 0, got %f", gauge)
	}
}

func TestReadiness_NoDependencies(t *testing.T) {
	c, _ := newTestChecker()

	result := c.Readiness(context.Background())
	if result.Status != "up" {
		t.Fatalf("expected status up, got %s", result.Status)
	}
	if len(result.Checks) != 0 {
		t.Fatalf("expected no checks, got %v", result.Checks)
	}
}

func testGauge(t *testing.T, reg *prometheus.Registry, name, depLabel string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "dependency" && lp.GetValue() == depLabel {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{dependency=%q} not found", name, depLabel)
	return 0
}
