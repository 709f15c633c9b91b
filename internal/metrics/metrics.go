// Package metrics collects and exposes Prometheus metrics for the
// dashboard: remote API traffic, login outcomes, and session reaping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records dashboard metrics into a Prometheus registry. It
// satisfies the resource client's metrics hook.
type Collector struct {
	apiRequests     *prometheus.CounterVec
	apiLatency      *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	sessionsReaped  prometheus.Counter
	sessionsCreated prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinidash_api_requests_total",
			Help: "Requests issued to the remote resource service, by operation and status code.",
		}, []string{"op", "code"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clinidash_api_request_duration_seconds",
			Help:    "Latency of remote resource service requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clinidash_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		sessionsReaped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinidash_sessions_reaped_total",
			Help: "Expired browser sessions removed by the reaper.",
		}),
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clinidash_sessions_created_total",
			Help: "Browser sessions created by successful logins.",
		}),
	}

	reg.MustRegister(
		c.apiRequests,
		c.apiLatency,
		c.logins,
		c.sessionsReaped,
		c.sessionsCreated,
	)

	return c
}

// RecordRequest records one remote service request. A status of 0 means
// the request never produced a response (network failure).
func (c *Collector) RecordRequest(op string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	c.apiRequests.WithLabelValues(op, code).Inc()
	c.apiLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

// RecordLogin records a login attempt.
func (c *Collector) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordSessionCreated records a new browser session.
func (c *Collector) RecordSessionCreated() {
	c.sessionsCreated.Inc()
}

// RecordSessionsReaped records expired sessions removed by the reaper.
func (c *Collector) RecordSessionsReaped(count int64) {
	c.sessionsReaped.Add(float64(count))
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
