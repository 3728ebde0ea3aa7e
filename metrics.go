// Copyright 2026 The reqx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqx

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bellwood/reqx/fault"
)

// A MetricsCollector provides Prometheus metrics for the request
// lifecycle: request counts by method and status, request durations,
// redirect hops, and errors by fault kind. It is safe for concurrent
// use.
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	redirectsTotal  prometheus.Counter
	errorsTotal     *prometheus.CounterVec
}

// NewMetricsCollector creates a metrics collector on the default
// registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the
// supplied registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reqx_requests_total",
				Help: "Total number of exchanges settled",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reqx_request_duration_seconds",
				Help:    "Duration of exchanges in seconds, redirect hops included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		redirectsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "reqx_redirects_total",
				Help: "Total number of redirect hops followed",
			},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reqx_errors_total",
				Help: "Total number of exchanges settled with an error, by fault kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *MetricsCollector) record(method string, res *Result, err error, d time.Duration) {
	status := "error"
	if err == nil {
		status = strconv.Itoa(res.StatusCode)
	} else {
		var httpErr *fault.HTTPError
		if errors.As(err, &httpErr) {
			status = strconv.Itoa(httpErr.StatusCode)
		}
		m.errorsTotal.WithLabelValues(errKind(err)).Inc()
	}
	m.requestsTotal.WithLabelValues(method, status).Inc()
	m.requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *MetricsCollector) recordRedirect() {
	m.redirectsTotal.Inc()
}

func errKind(err error) string {
	var (
		validationErr *fault.ValidationError
		connErr       *fault.ConnectionError
		httpErr       *fault.HTTPError
		parseErr      *fault.ParseError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &connErr):
		return "connection"
	case errors.As(err, &httpErr):
		return "http"
	case errors.As(err, &parseErr):
		return "parse"
	default:
		return "other"
	}
}
