// Package metrics exposes Prometheus counters for the submission engine and
// its HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "forms"

// Config holds metrics configuration.
type Config struct {
	Namespace string
	// RuntimeCollectors registers the Go and process collectors.
	RuntimeCollectors bool
	Buckets           []float64
}

// Recorder owns a private registry and the engine's metric vectors.
//
// Safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	classifications   *prometheus.CounterVec
	renders           *prometheus.CounterVec
	extractions       *prometheus.CounterVec
	extractedItems    *prometheus.CounterVec
	materialOrders    *prometheus.CounterVec
	resets            *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	httpResponseSize *prometheus.HistogramVec
	httpActive       prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry so tests and multiple
// instances never collide on the default one.
func NewRecorder(cfg Config) *Recorder {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25}
	}

	r := &Recorder{registry: prometheus.NewRegistry()}

	r.classifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "classifications_total",
		Help:      "Submissions classified, by resolved kind and the rule that decided it.",
	}, []string{"kind", "rule"})

	r.renders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "renders_total",
		Help:      "Submissions partitioned into display sections, by kind.",
	}, []string{"kind"})

	r.extractions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "extractions_total",
		Help:      "Material extractions, by section title.",
	}, []string{"section"})

	r.extractedItems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "extracted_items_total",
		Help:      "Material line items produced, by section title.",
	}, []string{"section"})

	r.materialOrders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "material_orders_total",
		Help:      "Material order payloads built, by section title.",
	}, []string{"section"})

	r.resets = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "resets_total",
		Help:      "Mark N/A patches requested, by section tag and whether the tag was known.",
	}, []string{"tag", "known"})

	r.operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "operation_duration_seconds",
		Help:      "Time spent in engine operations.",
		Buckets:   cfg.Buckets,
	}, []string{"operation"})

	r.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "http_server_requests_total",
		Help:      "HTTP requests served, by method, route pattern and status code.",
	}, []string{"method", "route", "status_code"})

	r.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "http_server_request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	r.httpResponseSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "http_server_response_size_bytes",
		Help:      "HTTP response body size, by method and route pattern.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
	}, []string{"method", "route"})

	r.httpActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "http_server_active_requests",
		Help:      "HTTP requests currently being served.",
	})

	r.registry.MustRegister(
		r.classifications,
		r.renders,
		r.extractions,
		r.extractedItems,
		r.materialOrders,
		r.resets,
		r.operationDuration,
		r.httpRequests,
		r.httpDuration,
		r.httpResponseSize,
		r.httpActive,
	)
	if cfg.RuntimeCollectors {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

func (r *Recorder) Classified(kind, rule string) {
	r.classifications.WithLabelValues(kind, rule).Inc()
}

func (r *Recorder) Rendered(kind string) {
	r.renders.WithLabelValues(kind).Inc()
}

// Extracted counts one extraction and the items it produced.
func (r *Recorder) Extracted(section string, items int) {
	r.extractions.WithLabelValues(section).Inc()
	r.extractedItems.WithLabelValues(section).Add(float64(items))
}

func (r *Recorder) MaterialOrderBuilt(section string) {
	r.materialOrders.WithLabelValues(section).Inc()
}

// Reset counts a Mark N/A request. Unknown tags are bucketed under "unknown"
// to keep label cardinality bounded.
func (r *Recorder) Reset(tag string, known bool) {
	if !known {
		tag = "unknown"
	}
	r.resets.WithLabelValues(tag, strconv.FormatBool(known)).Inc()
}

// ObserveDuration records how long operation took since start.
func (r *Recorder) ObserveDuration(operation string, start time.Time) {
	r.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// HTTPRequestStarted marks a request as in flight.
func (r *Recorder) HTTPRequestStarted() {
	r.httpActive.Inc()
}

// HTTPRequestFinished records a served request and releases its in-flight slot.
// route must be the matched pattern, never the raw path.
func (r *Recorder) HTTPRequestFinished(method, route string, status int, start time.Time, responseSize int) {
	r.httpActive.Dec()
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	if responseSize > 0 {
		r.httpResponseSize.WithLabelValues(method, route).Observe(float64(responseSize))
	}
}

// Handler serves the registry in the Prometheus/OpenMetrics exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Gather collects all metric families from the registry.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}
