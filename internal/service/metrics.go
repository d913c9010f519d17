package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	computeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "circuit_planner_compute_total",
		Help: "Engine computations served, by endpoint.",
	}, []string{"endpoint"})

	shapesPerCompute = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "circuit_planner_shapes_per_compute",
		Help:    "Shape count of incoming snapshots.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	findingsPerCompute = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "circuit_planner_findings_per_compute",
		Help:    "Validation findings per computation.",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})
)

// observeCompute records one successful engine run.
func observeCompute(endpoint string, shapes, findings int) {
	computeTotal.WithLabelValues(endpoint).Inc()
	shapesPerCompute.Observe(float64(shapes))
	findingsPerCompute.Observe(float64(findings))
}
