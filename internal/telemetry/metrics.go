// Package telemetry registers the service's Prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolvesTotal counts solve attempts by outcome: ok, unsolvable, error.
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_solves_total",
		Help: "Solve attempts by outcome.",
	}, []string{"outcome"})

	// GenerationsTotal counts generated puzzles by difficulty tier.
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_generations_total",
		Help: "Generated puzzles by difficulty.",
	}, []string{"difficulty"})

	// VerificationsTotal counts challenge checks by result.
	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_verifications_total",
		Help: "Challenge verifications by result.",
	}, []string{"result"})

	// SolveDuration observes wall time of solve calls in seconds.
	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudoku_solve_duration_seconds",
		Help:    "Wall time of solve calls.",
		Buckets: prometheus.DefBuckets,
	})
)
