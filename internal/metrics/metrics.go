package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Completion outcome constants
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	completionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketai_completions_total",
			Help: "Total completion requests by use case and outcome",
		},
		[]string{"use_case", "outcome"},
	)

	completionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketai_completion_duration_seconds",
			Help:    "Completion request latency by use case",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"use_case"},
	)

	leadScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marketai_lead_score",
			Help:    "Distribution of extracted lead scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	activitiesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketai_activities_total",
			Help: "Total activity entries appended by type",
		},
		[]string{"type"},
	)
)

// SessionCounter reports how many sessions hold an activity log.
type SessionCounter interface {
	Sessions() int
}

var (
	initOnce sync.Once
	enabled  atomic.Bool
)

// Init registers the collectors with the default registry. Must be called
// once at startup; recording is a no-op before it. sessions may be nil.
func Init(sessions SessionCounter) {
	initOnce.Do(func() {
		prometheus.MustRegister(completionsTotal, completionDuration, leadScores, activitiesTotal)
		if sessions != nil {
			prometheus.MustRegister(prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "marketai_activity_sessions",
					Help: "Sessions currently holding an in-memory activity log",
				},
				func() float64 { return float64(sessions.Sessions()) },
			))
		}
		enabled.Store(true)
	})
}

// RecordCompletion records one completion call.
func RecordCompletion(useCase, outcome string, elapsed time.Duration) {
	if !enabled.Load() {
		return
	}
	completionsTotal.WithLabelValues(useCase, outcome).Inc()
	completionDuration.WithLabelValues(useCase).Observe(elapsed.Seconds())
}

// RecordLeadScore records an extracted lead score.
func RecordLeadScore(score int) {
	if !enabled.Load() {
		return
	}
	leadScores.Observe(float64(score))
}

// RecordActivity records an appended activity entry.
func RecordActivity(kind string) {
	if !enabled.Load() {
		return
	}
	activitiesTotal.WithLabelValues(kind).Inc()
}
