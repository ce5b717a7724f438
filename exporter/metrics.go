package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus instruments of one poller.
type Metrics struct {
	tagValue     *prometheus.GaugeVec
	pollErrors   prometheus.Counter
	tagErrors    *prometheus.CounterVec
	lastSuccess  prometheus.Gauge
	pollDuration prometheus.Histogram
}

// NewMetrics registers the poller's instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		tagValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ecotouchd_tag_value",
			Help: "Last polled value of a heat pump property",
		}, []string{"tag", "unit"}),
		pollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecotouchd_poll_errors_total",
			Help: "Poll cycles that failed entirely",
		}),
		tagErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecotouchd_tag_errors_total",
			Help: "Per-property misses and decode failures",
		}, []string{"tag", "status"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ecotouchd_last_poll_success_timestamp_seconds",
			Help: "Unix time of the last fully processed poll cycle",
		}),
		pollDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ecotouchd_poll_duration_seconds",
			Help:    "Wall time of one poll cycle",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.tagValue, m.pollErrors, m.tagErrors, m.lastSuccess, m.pollDuration)
	return m
}
