package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaos_agent_recommendations_total",
			Help: "Total number of recommendations produced",
		},
		[]string{"intent", "topology", "transport"},
	)

	recommendationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaos_agent_recommendation_errors_total",
			Help: "Total number of failed recommendation attempts",
		},
		[]string{"code"}, // INVALID_ARGUMENT, CONFIGURATION_GAP, INTERNAL
	)

	seedResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chaos_agent_seed_resolutions_total",
			Help: "Total number of seed resolutions by source",
		},
		[]string{"source"}, // supplied or generated
	)
)
