// Package metrics exposes the Prometheus collectors of both HTTP surfaces.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SscSPs/community_connect/internal/core/store"
)

// Metrics holds every collector, registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	StoreMutationsTotal *prometheus.CounterVec

	AuthAttemptsTotal        *prometheus.CounterVec
	RateLimitRejectionsTotal *prometheus.CounterVec

	ServerStartTime prometheus.Gauge
}

// New creates and registers all collectors. service labels every series
// ("app" or "auth") so both processes can share a dashboard.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cc_http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path_pattern", "status_code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "cc_http_request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path_pattern"}),

		StoreMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cc_store_mutations_total",
			Help:        "Applied application-state mutations by kind.",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		AuthAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cc_auth_attempts_total",
			Help:        "Login and registration attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		RateLimitRejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cc_ratelimit_rejections_total",
			Help:        "Requests rejected by a rate limiter.",
			ConstLabels: constLabels,
		}, []string{"scope"}),

		ServerStartTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "cc_server_start_time_seconds",
			Help:        "Unix timestamp when the server started.",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StoreMutationsTotal,
		m.AuthAttemptsTotal,
		m.RateLimitRejectionsTotal,
		m.ServerStartTime,
	)
	m.ServerStartTime.Set(float64(time.Now().Unix()))

	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Registry returns the private Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveStore subscribes to st and counts every applied mutation.
// The returned function detaches the observer.
func (m *Metrics) ObserveStore(st *store.Store) (unsubscribe func()) {
	return st.Subscribe(func(ev store.Event) {
		m.StoreMutationsTotal.WithLabelValues(string(ev.Kind)).Inc()
	})
}

// IncAuthAttempt records a login or registration outcome.
func (m *Metrics) IncAuthAttempt(operation, outcome string) {
	m.AuthAttemptsTotal.WithLabelValues(operation, outcome).Inc()
}

// IncRateLimitRejection increments the rate limit rejection counter.
func (m *Metrics) IncRateLimitRejection(scope string) {
	m.RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
}

// Middleware records request count and latency per route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		pattern := c.FullPath()
		if pattern == "" {
			pattern = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, pattern, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, pattern).Observe(time.Since(start).Seconds())
	}
}
