package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	documentsCreatedTotal *prometheus.CounterVec
	answersSubmittedTotal *prometheus.CounterVec
	intakeCompletedTotal  *prometheus.CounterVec
	exportsTotal          *prometheus.CounterVec
	chatMessagesTotal     *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "isogen",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "isogen",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	documentsCreatedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "documents",
			Name:      "created_total",
			Help:      "Total documents created by ISO type.",
		},
		[]string{"service", "type"},
	)
	answersSubmittedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "intake",
			Name:      "answers_total",
			Help:      "Total intake answers applied to documents.",
		},
		[]string{"service"},
	)
	intakeCompletedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "intake",
			Name:      "completed_total",
			Help:      "Total documents whose intake flow finished.",
		},
		[]string{"service"},
	)
	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "export",
			Name:      "downloads_total",
			Help:      "Total document exports by format and outcome.",
		},
		[]string{"service", "format", "status"},
	)
	chatMessagesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat messages accepted by role.",
		},
		[]string{"service", "role"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		documentsCreatedTotal,
		answersSubmittedTotal,
		intakeCompletedTotal,
		exportsTotal,
		chatMessagesTotal,
	)

	return &HTTPServerMetrics{
		registry:              registry,
		requestTotal:          requestTotal,
		requestDuration:       requestDuration,
		requestInFlight:       requestInFlight,
		documentsCreatedTotal: documentsCreatedTotal,
		answersSubmittedTotal: answersSubmittedTotal,
		intakeCompletedTotal:  intakeCompletedTotal,
		exportsTotal:          exportsTotal,
		chatMessagesTotal:     chatMessagesTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// normalizePath collapses per-document routes into one label value to keep
// metric cardinality bounded.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/export/"):
		return path
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordDocumentCreated(service, isoType string) {
	if isoType == "" {
		isoType = "unknown"
	}
	m.documentsCreatedTotal.WithLabelValues(service, isoType).Inc()
}

func (m *HTTPServerMetrics) RecordAnswerSubmitted(service string, completed bool) {
	m.answersSubmittedTotal.WithLabelValues(service).Inc()
	if completed {
		m.intakeCompletedTotal.WithLabelValues(service).Inc()
	}
}

func (m *HTTPServerMetrics) RecordExport(service, format string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if format == "" {
		format = "unknown"
	}
	m.exportsTotal.WithLabelValues(service, format, status).Inc()
}

func (m *HTTPServerMetrics) RecordChatMessage(service, role string) {
	if role == "" {
		role = "unknown"
	}
	m.chatMessagesTotal.WithLabelValues(service, role).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
