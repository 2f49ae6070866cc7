package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	replyTotal    *prometheus.CounterVec
	replyDuration *prometheus.HistogramVec
	replyInFlight prometheus.Gauge
	queueLag      *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	replyTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "isogen",
			Subsystem: "worker",
			Name:      "chat_reply_total",
			Help:      "Total processed chat replies by status.",
		},
		[]string{"service", "status"},
	)
	replyDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "isogen",
			Subsystem: "worker",
			Name:      "chat_reply_duration_seconds",
			Help:      "Chat reply processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	replyInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "isogen",
			Subsystem: "worker",
			Name:      "chat_reply_in_flight",
			Help:      "Number of in-flight chat reply tasks.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "isogen",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between reply request and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)

	registry.MustRegister(replyTotal, replyDuration, replyInFlight, queueLag)

	return &WorkerMetrics{
		registry:      registry,
		replyTotal:    replyTotal,
		replyDuration: replyDuration,
		replyInFlight: replyInFlight,
		queueLag:      queueLag,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartReply() {
	m.replyInFlight.Inc()
}

func (m *WorkerMetrics) FinishReply(service string, duration time.Duration, err error) {
	m.replyInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.replyTotal.WithLabelValues(service, status).Inc()
	m.replyDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}
