package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of ranking the catalog for a recommendations request
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "socialbook_recommend_latency_seconds",
		Help:    "Latency of scoring and ranking the recommendation catalog",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation lists served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialbook_recommend_requests_total",
		Help: "Total number of recommendation lists served",
	})

	ReviewsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialbook_reviews_submitted_total",
		Help: "Reviews accepted",
	})

	ReviewsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialbook_reviews_rejected_total",
		Help: "Review submissions rejected for missing required fields",
	})

	BooksFinished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "socialbook_books_finished_total",
		Help: "Books moved to the finished shelf by review submissions",
	})

	initOnce sync.Once
)

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RecommendLatency,
			RecommendRequests,
			ReviewsSubmitted,
			ReviewsRejected,
			BooksFinished,
		)
	})
}
