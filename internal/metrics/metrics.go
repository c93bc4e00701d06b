package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalogadmin"

// Collector holds the metric vectors for backend calls and form submissions.
// Each Collector owns its registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
	FormSubmits     *prometheus.CounterVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		BackendRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Calls made to the catalog REST backend",
		}, []string{"resource", "method", "outcome"}),
		BackendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of calls to the catalog REST backend",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource", "method"}),
		FormSubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submits_total",
			Help:      "Entity form submissions by screen and outcome",
		}, []string{"screen", "mode", "outcome"}),
	}
	reg.MustRegister(c.BackendRequests, c.BackendDuration, c.FormSubmits)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
}
