// Package metrics exposes Prometheus metrics for the HTTP API and the messaging pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "crm"

// Registry holds every collector of the service. A dedicated registry keeps tests independent
// of the global default registerer.
type Registry struct {
	registry *prometheus.Registry

	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	webhooksTotal       *prometheus.CounterVec
	identityResolutions *prometheus.CounterVec
}

// New creates a registry with process and Go runtime collectors registered
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		webhooksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhooks_total",
				Help:      "Inbound webhook deliveries by source and outcome.",
			},
			[]string{"source", "outcome"},
		),
		identityResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "identity_resolutions_total",
				Help:      "Contact identity resolutions by match kind.",
			},
			[]string{"matched_by", "created"},
		),
	}

	r.registry.MustRegister(
		r.requestsTotal,
		r.requestDuration,
		r.webhooksTotal,
		r.identityResolutions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Middleware records request count and latency per route template
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		r.requestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		r.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveWebhook counts a webhook delivery
func (r *Registry) ObserveWebhook(source, outcome string) {
	if r == nil {
		return
	}
	r.webhooksTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveIdentityResolution counts a resolved contact identity
func (r *Registry) ObserveIdentityResolution(matchedBy string, created bool) {
	if r == nil {
		return
	}
	r.identityResolutions.WithLabelValues(matchedBy, strconv.FormatBool(created)).Inc()
}
