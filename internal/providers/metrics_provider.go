package providers

import (
	"streamsched/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveStoreDuration(op string, duration time.Duration)
	IncStoreFailures(op string)
	SetDirty(dirty bool)
	SetStoreReachable(reachable bool)
	SetStreamsTotal(count int)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	storeDuration   *prometheus.HistogramVec
	storeFailures   *prometheus.CounterVec
	dirty           prometheus.Gauge
	storeReachable  prometheus.Gauge
	streamsTotal    prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveStoreDuration(op string, duration time.Duration) {
	m.storeDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncStoreFailures(op string) {
	m.storeFailures.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) SetDirty(dirty bool) {
	m.dirty.Set(boolGauge(dirty))
}

func (m *MetricsProvider) SetStoreReachable(reachable bool) {
	m.storeReachable.Set(boolGauge(reachable))
}

func (m *MetricsProvider) SetStreamsTotal(count int) {
	m.streamsTotal.Set(float64(count))
}

func boolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streamsched_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "streamsched_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamsched_cache_hits_total",
			Help: "Total number of public schedule cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "streamsched_cache_misses_total",
			Help: "Total number of public schedule cache misses",
		}),

		storeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "streamsched_store_duration_seconds",
			Help:    "Duration of settings store calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		storeFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "streamsched_store_failures_total",
			Help: "Total number of failed settings store calls",
		}, []string{"op"}),

		dirty: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "streamsched_schedule_dirty",
			Help: "1 when the working schedule has unsaved changes",
		}),

		storeReachable: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "streamsched_store_reachable",
			Help: "1 when the last settings store call succeeded",
		}),

		streamsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "streamsched_streams_total",
			Help: "Number of stream entries in the working schedule",
		}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}
func (n *noopMetrics) IncStoreFailures(_ string)                        {}
func (n *noopMetrics) SetDirty(_ bool)                                  {}
func (n *noopMetrics) SetStoreReachable(_ bool)                         {}
func (n *noopMetrics) SetStreamsTotal(_ int)                            {}
