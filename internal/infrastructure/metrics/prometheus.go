package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/johnquangdev/discussion-planner/internal/usecase/assignment"
)

// PrometheusRecorder implements assignment.MetricsRecorder backed by Prometheus.
type PrometheusRecorder struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	generationDuration *prometheus.HistogramVec
	generations        *prometheus.CounterVec
	warnings           prometheus.Counter
	unseated           prometheus.Counter
}

// Compile-time assertion that PrometheusRecorder implements MetricsRecorder.
var _ assignment.MetricsRecorder = (*PrometheusRecorder)(nil)

// NewPrometheus creates a new Prometheus-backed recorder.
//
// reg defaults to prometheus.DefaultRegisterer and namespace to
// "discussion_planner".
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "discussion_planner"
	}

	p := &PrometheusRecorder{reg: reg, namespace: namespace}
	p.ensureRegistered()
	return p
}

func (p *PrometheusRecorder) ensureRegistered() {
	p.once.Do(func() {
		p.generationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "generation_duration_seconds",
			Help:      "Duration of assignment generation requests in seconds by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms .. ~10s
		}, []string{"outcome"})

		p.generations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "generations_total",
			Help:      "Total assignment generation requests by outcome.",
		}, []string{"outcome"})

		p.warnings = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "warnings_total",
			Help:      "Total non-fatal warnings emitted by successful generations.",
		})

		p.unseated = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "unseated_seats_total",
			Help:      "Total participant-rounds left without a seat by successful generations.",
		})

		p.reg.MustRegister(p.generationDuration, p.generations, p.warnings, p.unseated)
	})
}

// ObserveGeneration records the outcome and duration of one generation request.
func (p *PrometheusRecorder) ObserveGeneration(outcome string, duration time.Duration) {
	p.generations.WithLabelValues(outcome).Inc()
	p.generationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// AddWarnings adds to the warning counter.
func (p *PrometheusRecorder) AddWarnings(n int) {
	if n > 0 {
		p.warnings.Add(float64(n))
	}
}

// AddUnseated adds to the unseated counter.
func (p *PrometheusRecorder) AddUnseated(n int) {
	if n > 0 {
		p.unseated.Add(float64(n))
	}
}
