package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	exportsTotal    *prometheus.CounterVec
	backupsTotal    prometheus.Counter
	entitySaves     *prometheus.CounterVec
}

// NewMetricsService registers the core Prometheus collectors.
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

	exportsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_total",
		Help: "Total number of snapshot exports by format",
	}, []string{"format"})

	backupsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backups_total",
		Help: "Total number of backup runs",
	})

	entitySaves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "entity_saves_total",
		Help: "Total number of entity save operations by entity type",
	}, []string{"entity"})

	registry.MustRegister(requestDuration, requestTotal, exportsTotal, backupsTotal, entitySaves)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		exportsTotal:    exportsTotal,
		backupsTotal:    backupsTotal,
		entitySaves:     entitySaves,
	}
}

// ObserveHTTPRequest records a completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// IncExport counts a completed snapshot export.
func (s *MetricsService) IncExport(format string) {
	s.exportsTotal.WithLabelValues(format).Inc()
}

// IncBackup counts a completed backup run.
func (s *MetricsService) IncBackup() {
	s.backupsTotal.Inc()
}

// IncEntitySave counts a save into one of the entity stores.
func (s *MetricsService) IncEntitySave(entity string) {
	s.entitySaves.WithLabelValues(entity).Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}
