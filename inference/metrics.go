package inference

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRounds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlkit_inference_rounds_total",
		Help: "Number of rule application rounds.",
	}, []string{"profile"})
	mInferred = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "owlkit_inferred_triples_total",
		Help: "Number of triples added by reasoning.",
	}, []string{"profile"})
	mDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "owlkit_inference_duration_seconds",
		Help: "Time to compute a closure.",
	}, []string{"profile"})
)
