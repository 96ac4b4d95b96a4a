// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	global *Metrics
	once   sync.Once
)

// Metrics holds every collector. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec

	RealtimeSubscriptions prometheus.Gauge
	RealtimeChannels      prometheus.Gauge
	RealtimeEvents        *prometheus.CounterVec

	LiveConnections prometheus.Gauge

	HTTPDuration *prometheus.HistogramVec
}

// New registers the collectors on the default registry once and returns
// them.
//
//   - polaris_store_query_duration_seconds{collection,op}
//   - polaris_store_query_errors_total{collection,op}
//   - polaris_realtime_subscriptions
//   - polaris_realtime_channels
//   - polaris_realtime_events_total{collection,type}
//   - polaris_live_connections
//   - polaris_http_request_duration_seconds{method,route,status}
func New() *Metrics {
	once.Do(func() {
		global = &Metrics{
			QueryDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "polaris_store_query_duration_seconds",
					Help:    "Duration of store reads and writes",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"collection", "op"},
			),
			QueryErrors: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "polaris_store_query_errors_total",
					Help: "Store operations that returned an error",
				},
				[]string{"collection", "op"},
			),
			RealtimeSubscriptions: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "polaris_realtime_subscriptions",
				Help: "Live realtime subscriptions",
			}),
			RealtimeChannels: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "polaris_realtime_channels",
				Help: "Bus channels currently subscribed",
			}),
			RealtimeEvents: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "polaris_realtime_events_total",
					Help: "Change events received from the bus",
				},
				[]string{"collection", "type"},
			),
			LiveConnections: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "polaris_live_connections",
				Help: "Open live session sockets",
			}),
			HTTPDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "polaris_http_request_duration_seconds",
					Help:    "HTTP request latency",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route", "status"},
			),
		}
	})
	return global
}

// ObserveQuery records one store call started at start.
func (m *Metrics) ObserveQuery(collection, op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(collection, op).Observe(time.Since(start).Seconds())
	if err != nil {
		m.QueryErrors.WithLabelValues(collection, op).Inc()
	}
}

func (m *Metrics) SubscriptionAdded() {
	if m != nil {
		m.RealtimeSubscriptions.Inc()
	}
}

func (m *Metrics) SubscriptionRemoved() {
	if m != nil {
		m.RealtimeSubscriptions.Dec()
	}
}

func (m *Metrics) SetChannels(n int) {
	if m != nil {
		m.RealtimeChannels.Set(float64(n))
	}
}

func (m *Metrics) EventReceived(collection, eventType string) {
	if m != nil {
		m.RealtimeEvents.WithLabelValues(collection, eventType).Inc()
	}
}

func (m *Metrics) LiveConnected() {
	if m != nil {
		m.LiveConnections.Inc()
	}
}

func (m *Metrics) LiveDisconnected() {
	if m != nil {
		m.LiveConnections.Dec()
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
