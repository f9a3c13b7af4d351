package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	betsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_placed_total",
			Help: "Bets accepted, by kind (single/parlay)",
		},
		[]string{"kind"},
	)

	betsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_rejected_total",
			Help: "Bet placements rejected, by reason",
		},
		[]string{"reason"},
	)

	betsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_settled_total",
			Help: "Settled wagers by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	optionsLocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "betting_options_locked_total",
			Help: "Betting options flipped to locked by the sweep",
		},
	)

	sweepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sweep_duration_ms",
			Help:    "Background sweep duration in ms",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"sweep"},
	)
)

func RecordBetPlaced(kind string)            { betsPlaced.WithLabelValues(kind).Inc() }
func RecordBetRejected(reason string)        { betsRejected.WithLabelValues(reason).Inc() }
func RecordSettlement(kind, outcome string)  { betsSettled.WithLabelValues(kind, outcome).Inc() }
func RecordOptionsLocked(n int)              { optionsLocked.Add(float64(n)) }
func RecordSweep(sweep string, started time.Time) {
	sweepDuration.WithLabelValues(sweep).Observe(float64(time.Since(started).Milliseconds()))
}
