// Package metrics holds the Prometheus collectors for scribo.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribo_generations_total",
		Help: "Generation requests by tool and outcome.",
	}, []string{"tool", "status"})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scribo_generation_duration_seconds",
		Help:    "Time spent waiting on the model provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider"})

	GenerationsRecordErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribo_generations_record_errors_total",
		Help: "History insert failures.",
	})

	GenerationsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scribo_generations_stored",
		Help: "Number of generations kept in history.",
	})

	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribo_exports_total",
		Help: "Exports served by format.",
	}, []string{"format"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribo_rate_limited_total",
		Help: "Generation requests rejected by the rate limiter.",
	})
)
