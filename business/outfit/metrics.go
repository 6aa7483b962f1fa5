package outfit

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_feedback_events_total",
			Help: "Count of recorded swipe feedback events by direction.",
		},
		[]string{"direction"},
	)

	GenerationAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outfit_generation_attempts_total",
			Help: "Count of outfit generation attempts by strategy and outcome.",
		},
		[]string{"strategy", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(FeedbackEventsTotal, GenerationAttemptsTotal)
}
