package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the outfit recommendation HTTP handler
	OutfitRecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "outfit_recommend_latency_seconds",
		Help:    "Latency of the outfit recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of outfit recommendation requests served
	OutfitRecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "outfit_recommend_requests_total",
		Help: "Total number of outfit recommendation requests",
	})
)

func init() {
	prometheus.MustRegister(OutfitRecommendLatency, OutfitRecommendRequests)
}
