package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerMetrics aggregates chord recognition events consumed from the bus.
type WorkerMetrics struct {
	registry *prometheus.Registry

	eventsTotal    *prometheus.CounterVec
	chordsTotal    *prometheus.CounterVec
	eventLag       *prometheus.HistogramVec
	handleDuration *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	eventsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "events_total",
			Help:      "Consumed recognition events by status.",
		},
		[]string{"service", "status"},
	)
	chordsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "top_chords_total",
			Help:      "Best recognized chord per event by category and exactness.",
		},
		[]string{"service", "category", "exact"},
	)
	eventLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "event_lag_seconds",
			Help:      "Delay between recognition and event handling.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"service"},
	)
	handleDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "event_handle_duration_seconds",
			Help:      "Event handling duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)

	registry.MustRegister(eventsTotal, chordsTotal, eventLag, handleDuration)

	return &WorkerMetrics{
		registry:       registry,
		eventsTotal:    eventsTotal,
		chordsTotal:    chordsTotal,
		eventLag:       eventLag,
		handleDuration: handleDuration,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTopChord counts the best candidate of one event. An empty category
// means nothing was recognized.
func (m *WorkerMetrics) ObserveTopChord(service, category string, exact bool) {
	if category == "" {
		category = "none"
	}
	exactLabel := "false"
	if exact {
		exactLabel = "true"
	}
	m.chordsTotal.WithLabelValues(service, category, exactLabel).Inc()
}

func (m *WorkerMetrics) FinishEvent(service string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.eventsTotal.WithLabelValues(service, status).Inc()
	m.handleDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveEventLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.eventLag.WithLabelValues(service).Observe(lag.Seconds())
}
