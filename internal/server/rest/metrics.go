package rest

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the Prometheus collectors of the HTTP layer.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Logins   *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dante",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dante",
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Logins: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dante",
				Name:      "logins_total",
				Help:      "Login attempts by identity kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(kind string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.Logins.WithLabelValues(kind, outcome).Inc()
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			m.Requests.WithLabelValues(c.Request().Method, route, status).Inc()
			m.Duration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
