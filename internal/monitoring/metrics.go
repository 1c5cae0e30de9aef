package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	RecordMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proptrack_record_mutations_total",
			Help: "Total number of record store mutations by collection and operation",
		},
		[]string{"collection", "op"},
	)
	SyncInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "proptrack_replica_sync_in_flight",
			Help: "Whether a replica sync is currently outstanding (0 or 1)",
		},
	)
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proptrack_replica_sync_duration_seconds",
			Help:    "Duration of replica sync uploads in seconds",
			Buckets: prometheus.LinearBuckets(0, 0.5, 10),
		},
	)
	SyncFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "proptrack_replica_sync_failures_total",
			Help: "Total number of failed replica syncs",
		},
	)
	GatewayFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "proptrack_gateway_fallbacks_total",
			Help: "Total number of external gateway calls answered with the fixed fallback",
		},
		[]string{"gateway"},
	)
)

func InitMetrics() {
	collectors := []prometheus.Collector{
		RecordMutations,
		SyncInFlight,
		SyncDuration,
		SyncFailures,
		GatewayFallbacks,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			log.Error().Err(err).Msg("Failed to register metric")
		}
	}
}
