package metrics

import (
	"net/http"
	"strconv"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors of the service.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	ClientsCreated   prometheus.Counter
	StageTransitions *prometheus.CounterVec
	ExportsCreated   prometheus.Counter

	gatherer prometheus.Gatherer
}

var _ interfaces.IPipelineRecorder = (*Metrics)(nil)

// New registers the collectors on reg. Pass prometheus.NewRegistry() in
// tests to keep them isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		ClientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_clients_created_total",
			Help: "Total number of client records created",
		}),
		StageTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pipeline_stage_transitions_total",
				Help: "Total number of persisted stage transitions",
			},
			[]string{"from", "to"},
		),
		ExportsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "pipeline_exports_created_total",
			Help: "Total number of pipeline workbooks exported",
		}),

		gatherer: reg,
	}
}

// Middleware records request count and latency per route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ClientCreated() {
	m.ClientsCreated.Inc()
}

const unknownStageLabel = "unknown"

// StageChanged counts a transition. An empty source is reported as lead and
// any stage outside the pipeline as unknown.
func (m *Metrics) StageChanged(from, to entities.Stage) {
	if from == "" {
		from = entities.StageLead
	}
	m.StageTransitions.WithLabelValues(stageLabel(from), stageLabel(to)).Inc()
}

func stageLabel(s entities.Stage) string {
	if !s.IsKnown() {
		return unknownStageLabel
	}
	return string(s)
}

func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}
