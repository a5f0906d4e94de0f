package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the evidence domain's Prometheus metrics.
type Metrics struct {
	FeeCalculations       *prometheus.CounterVec
	ValidationFailures    *prometheus.CounterVec
	EvidenceUpdates       *prometheus.CounterVec
	RequirementCacheHits  prometheus.Counter
	RequirementCacheMiss  prometheus.Counter
	CollaboratorCalls     *prometheus.CounterVec
	CollaboratorFailures  *prometheus.CounterVec
}

// New creates and registers all evidence metrics.
func New() *Metrics {
	return &Metrics{
		FeeCalculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crime_evidence_fee_calculations_total",
			Help: "Fee determinations by resulting level ('none' when no rule matched, 'skipped' when the gate short-circuited).",
		}, []string{"fee_level"}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crime_evidence_validation_failures_total",
			Help: "Evidence update validation failures by rule.",
		}, []string{"rule"}),
		EvidenceUpdates: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crime_evidence_updates_total",
			Help: "Successful evidence updates by whether all evidence was received.",
		}, []string{"all_received"}),
		RequirementCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crime_evidence_requirement_cache_hits_total",
			Help: "Requirement lookups served from the cache.",
		}),
		RequirementCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crime_evidence_requirement_cache_misses_total",
			Help: "Requirement lookups that fell through to the store.",
		}),
		CollaboratorCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crime_evidence_collaborator_calls_total",
			Help: "Outbound collaborator calls by service.",
		}, []string{"service"}),
		CollaboratorFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crime_evidence_collaborator_failures_total",
			Help: "Failed outbound collaborator calls by service.",
		}, []string{"service"}),
	}
}
