package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	synthesisCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recommend",
		Subsystem: "synthesis",
		Name:      "requests_total",
		Help:      "Synthesis attempts by outcome.",
	}, []string{"outcome"})
	fallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "recommend",
		Subsystem: "synthesis",
		Name:      "extraction_fallbacks_total",
		Help:      "Model responses that could not be parsed and were replaced with the fallback batch.",
	})
	completionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "recommend",
		Subsystem: "completion",
		Name:      "request_duration_seconds",
		Help:      "Wall-clock duration of completion provider calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(synthesisCounter, fallbackCounter, completionDuration)
}

// RecordSynthesis counts one finished synthesis attempt.
func RecordSynthesis(outcome string) {
	synthesisCounter.WithLabelValues(outcome).Inc()
}

// RecordExtractionFallback counts a degraded extraction. Fallbacks are
// successes to the caller; this counter is the only place they surface.
func RecordExtractionFallback() {
	fallbackCounter.Inc()
}

// ObserveCompletion records the latency of one provider call.
func ObserveCompletion(elapsed time.Duration, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	completionDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
