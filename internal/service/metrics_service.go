package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and
// the snapshot store behind it.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeApply      prometheus.Observer
	enrollSubmits   prometheus.Counter
	enrollDecisions *prometheus.CounterVec
	logins          *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeApply := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_apply_duration_seconds",
		Help:    "Duration of snapshot store batch commits",
		Buckets: prometheus.DefBuckets,
	})

	enrollSubmits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "enrollment_submissions_total",
		Help: "Total enrollment requests submitted",
	})

	enrollDecisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "enrollment_decisions_total",
		Help: "Total enrollment decisions by resulting status",
	}, []string{"status"})

	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "logins_total",
		Help: "Total login attempts by outcome",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeApply, enrollSubmits, enrollDecisions, logins, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeApply:      storeApply,
		enrollSubmits:   enrollSubmits,
		enrollDecisions: enrollDecisions,
		logins:          logins,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records per-route request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveStoreApply records the duration of one snapshot batch commit.
func (m *MetricsService) ObserveStoreApply(duration time.Duration) {
	if m == nil || m.storeApply == nil {
		return
	}
	m.storeApply.Observe(duration.Seconds())
}

// IncEnrollmentSubmission counts a new public enrollment request.
func (m *MetricsService) IncEnrollmentSubmission() {
	if m == nil {
		return
	}
	m.enrollSubmits.Inc()
}

// IncEnrollmentDecision counts an admin decision by resulting status.
func (m *MetricsService) IncEnrollmentDecision(status string) {
	if m == nil {
		return
	}
	m.enrollDecisions.WithLabelValues(status).Inc()
}

// IncLogin counts a login attempt, outcome "accepted" or "rejected".
func (m *MetricsService) IncLogin(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}
