// Package metrics exposes HTTP and use-case metrics in the Prometheus format.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector is a prometheus.Collector holding every application metric.
type Collector struct {
	requestCount       *prometheus.CounterVec
	requestLatency     *prometheus.HistogramVec
	requestsInProgress *prometheus.GaugeVec
	operations         *prometheus.CounterVec
	operationLatency   *prometheus.HistogramVec
	servicesCount      prometheus.Gauge
}

// NewCollector returns a new Collector. namespace may be empty.
func NewCollector(namespace string) *Collector {
	return &Collector{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests count",
			}, []string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "endpoint"},
		),
		requestsInProgress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "Number of HTTP requests in progress",
			}, []string{"method"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "service_operations_total",
				Help:      "Total number of service operations",
			}, []string{"operation", "status"},
		),
		operationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "service_operation_duration_seconds",
				Help:      "Duration of service operations in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			}, []string{"operation"},
		),
		servicesCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "services_total",
				Help:      "Total number of services in the system",
			},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.requestCount.Describe(ch)
	c.requestLatency.Describe(ch)
	c.requestsInProgress.Describe(ch)
	c.operations.Describe(ch)
	c.operationLatency.Describe(ch)
	c.servicesCount.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.requestCount.Collect(ch)
	c.requestLatency.Collect(ch)
	c.requestsInProgress.Collect(ch)
	c.operations.Collect(ch)
	c.operationLatency.Collect(ch)
	c.servicesCount.Collect(ch)
}

// NewRegistry registers c next to the Go runtime and process collectors.
func NewRegistry(c *Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, col := range []prometheus.Collector{
		c,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// SetServices implements usecases.ServicesGauge.
func (c *Collector) SetServices(n int) {
	c.servicesCount.Set(float64(n))
}

func (c *Collector) observeOperation(name string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.operations.WithLabelValues(name, status).Inc()
	c.operationLatency.WithLabelValues(name).Observe(d.Seconds())
}

func (c *Collector) requestStarted(method string) {
	c.requestsInProgress.WithLabelValues(method).Inc()
}

func (c *Collector) requestFinished(method, endpoint string, status int, d time.Duration) {
	c.requestsInProgress.WithLabelValues(method).Dec()
	c.requestLatency.WithLabelValues(method, endpoint).Observe(d.Seconds())
	c.requestCount.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}
