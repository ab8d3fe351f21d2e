// Package metrics defines Prometheus metrics for the skillnet server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillnet_tool_calls_total",
			Help: "Total MCP tool invocations",
		},
		[]string{"tool", "outcome"},
	)

	GraphBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skillnet_graph_build_duration_seconds",
			Help:    "Time spent aggregating records and building the skill graph",
			Buckets: prometheus.DefBuckets,
		},
	)

	SkillCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillnet_skills_total",
			Help: "Skill node count in the built graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "skillnet_edges_total",
			Help: "Co-occurrence edge count in the built graph",
		},
	)
)

// MustRegister installs every metric into the given registerer
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		ToolCallsTotal,
		GraphBuildDuration,
		SkillCount,
		EdgeCount,
	)
}
