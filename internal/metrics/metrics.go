package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/ErlanBelekov/communication-service/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Auth metrics

	AuthAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comms",
		Name:      "auth_attempts_total",
		Help:      "Login and refresh attempts, by operation and outcome.",
	}, []string{"operation", "outcome"})

	PasswordHashDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "comms",
		Name:      "password_hash_duration_seconds",
		Help:      "Time spent deriving a password key.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1},
	})

	// Mail metrics

	EmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comms",
		Name:      "emails_total",
		Help:      "Outbound emails, by outcome (sent, failed, skipped).",
	}, []string{"outcome"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "comms",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comms",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		AuthAttemptsTotal,
		PasswordHashDuration,
		EmailsTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus liveness and readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
