// Package metrics exposes the application's prometheus instruments.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	Recalculations  prometheus.Counter
	Exports         prometheus.Counter
	DraftSaves      prometheus.Counter
	AnalyzerUploads prometheus.Counter
}

var Module = fx.Module("observability.metrics",
	fx.Provide(New),
)

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paperbrain_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paperbrain_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		Recalculations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paperbrain_recalculations_total",
			Help: "Totals recalculations triggered by field edits.",
		}),
		Exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paperbrain_exports_total",
			Help: "PDF exports completed.",
		}),
		DraftSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paperbrain_draft_saves_total",
			Help: "Draft checkpoints written.",
		}),
		AnalyzerUploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paperbrain_analyzer_uploads_total",
			Help: "Files forwarded to the analyzer.",
		}),
	}
	registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Recalculations,
		m.Exports,
		m.DraftSaves,
		m.AnalyzerUploads,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
