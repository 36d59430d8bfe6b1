package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the match HTTP handler
	MatchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_request_latency_seconds",
		Help:    "Latency of donation match requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of match requests served
	MatchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_requests_total",
		Help: "Total number of match requests",
	})

	// Candidate set size returned by the geo filter, pre-scoring
	MatchCandidates = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "match_candidates_per_request",
		Help:    "Donation candidates retrieved per match request",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	// Total accepted claims
	ClaimAccepts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_claims_accepted_total",
		Help: "Total number of accepted match claims",
	})
)

func Init() {
	prometheus.MustRegister(
		MatchLatency,
		MatchRequests,
		MatchCandidates,
		ClaimAccepts,
	)
}
