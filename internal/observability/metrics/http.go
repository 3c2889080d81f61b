package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry    *prometheus.Registry
	constLabels prometheus.Labels

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsUploadedTotal prometheus.Counter
	documentPages          prometheus.Histogram

	chatRequestsTotal *prometheus.CounterVec
	chatDuration      prometheus.Histogram
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	constLabels := prometheus.Labels{"service": service}

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "pdfchat",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests processed.",
			ConstLabels: constLabels,
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "pdfchat",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "pdfchat",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: constLabels,
		},
	)
	documentsUploadedTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "pdfchat",
			Subsystem:   "documents",
			Name:        "uploaded_total",
			Help:        "Total successfully ingested documents.",
			ConstLabels: constLabels,
		},
	)
	documentPages := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   "pdfchat",
			Subsystem:   "documents",
			Name:        "pages",
			Help:        "Page count distribution of ingested documents.",
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100, 250},
			ConstLabels: constLabels,
		},
	)
	chatRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "pdfchat",
			Subsystem:   "chat",
			Name:        "requests_total",
			Help:        "Total chat requests by outcome.",
			ConstLabels: constLabels,
		},
		[]string{"outcome"},
	)
	chatDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace:   "pdfchat",
			Subsystem:   "chat",
			Name:        "duration_seconds",
			Help:        "End-to-end chat request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
	)
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsUploadedTotal,
		documentPages,
		chatRequestsTotal,
		chatDuration,
	)

	return &HTTPServerMetrics{
		registry:               registry,
		constLabels:            constLabels,
		requestTotal:           requestTotal,
		requestDuration:        requestDuration,
		requestInFlight:        requestInFlight,
		documentsUploadedTotal: documentsUploadedTotal,
		documentPages:          documentPages,
		chatRequestsTotal:      chatRequestsTotal,
		chatDuration:           chatDuration,
	}
}

// RegisterDocumentsStoredGauge exposes the current store size. The store
// never evicts, so this gauge is the operational view of unbounded growth.
func (m *HTTPServerMetrics) RegisterDocumentsStoredGauge(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   "pdfchat",
			Subsystem:   "documents",
			Name:        "stored",
			Help:        "Number of documents currently held in memory.",
			ConstLabels: m.constLabels,
		},
		func() float64 { return float64(count()) },
	))
}

func (m *HTTPServerMetrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.requestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RequestStarted()  { m.requestInFlight.Inc() }
func (m *HTTPServerMetrics) RequestFinished() { m.requestInFlight.Dec() }

func (m *HTTPServerMetrics) ObserveDocumentUploaded(pages int) {
	m.documentsUploadedTotal.Inc()
	m.documentPages.Observe(float64(pages))
}

func (m *HTTPServerMetrics) ObserveChat(outcome string, duration time.Duration) {
	m.chatRequestsTotal.WithLabelValues(outcome).Inc()
	m.chatDuration.Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
