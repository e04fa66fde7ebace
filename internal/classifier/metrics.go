package classifier

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wasteclassd",
			Subsystem: "classifier",
			Name:      "predictions_total",
			Help:      "Total predictions by top-1 label",
		},
		[]string{"label"},
	)

	inferenceDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "wasteclassd",
			Subsystem: "classifier",
			Name:      "inference_duration_seconds",
			Help:      "Duration of model runtime calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	rejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wasteclassd",
			Subsystem: "classifier",
			Name:      "rejected_total",
			Help:      "Predictions rejected because the inference queue was full",
		},
	)

	readyGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wasteclassd",
			Subsystem: "classifier",
			Name:      "ready",
			Help:      "1 when a model is loaded and predictions can be served",
		},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, inferenceDuration, rejectedTotal, readyGauge)
}
