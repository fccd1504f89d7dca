package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TransitionsTotal  *prometheus.CounterVec
	RejectionsTotal   *prometheus.CounterVec
	OpenCases         prometheus.Gauge
	SubmitWaitSeconds prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		TransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lcflow_transitions_total",
			Help: "Committed lifecycle transitions by event",
		}, []string{"event"}),
		RejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lcflow_rejections_total",
			Help: "Rejected submissions by domain error code",
		}, []string{"code"}),
		OpenCases: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lcflow_open_cases",
			Help: "Cases registered and not yet in a terminal state",
		}),
		SubmitWaitSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lcflow_submit_wait_seconds",
			Help:    "Time spent waiting for a case's exclusive section",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
}

func (m *Metrics) IncrementTransitions(event string) {
	m.TransitionsTotal.WithLabelValues(event).Inc()
}

func (m *Metrics) IncrementRejections(code string) {
	m.RejectionsTotal.WithLabelValues(code).Inc()
}

func (m *Metrics) IncOpenCases() {
	m.OpenCases.Inc()
}

func (m *Metrics) DecOpenCases() {
	m.OpenCases.Dec()
}

func (m *Metrics) ObserveSubmitWait(d time.Duration) {
	m.SubmitWaitSeconds.Observe(d.Seconds())
}
