package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	swipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_swipes_total",
			Help: "Total number of swipes recorded",
		},
		[]string{"direction"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_total",
			Help: "Total number of matches created",
		},
	)

	undosTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_undos_total",
			Help: "Total number of undo attempts",
		},
		[]string{"outcome"},
	)

	dailyPicksServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_daily_picks_served_total",
			Help: "Total number of daily picks served",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of computed compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	candidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_candidate_pool_size",
			Help:    "Number of candidates returned per search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)

func RecordSwipe(direction Direction) {
	swipesTotal.WithLabelValues(string(direction)).Inc()
}

func RecordMatch() {
	matchesTotal.Inc()
}

func RecordUndo(outcome string) {
	undosTotal.WithLabelValues(outcome).Inc()
}

func RecordDailyPick() {
	dailyPicksServed.Inc()
}

func RecordCompatibilityScore(score int) {
	compatibilityScores.Observe(float64(score))
}

func RecordCandidatePoolSize(size int) {
	candidatePoolSize.Observe(float64(size))
}
