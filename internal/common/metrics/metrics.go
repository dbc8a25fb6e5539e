// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coi_validations_total",
			Help: "Total number of COI validations by outcome",
		},
		[]string{"compliant"},
	)

	ComplianceIssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coi_compliance_issues_total",
			Help: "Total number of compliance issues found by category and severity",
		},
		[]string{"category", "severity"},
	)

	ValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "coi_validation_duration_seconds",
			Help: "Duration of a full COI validation in seconds",
		},
	)

	ExcludedTradesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coi_excluded_trades_total",
			Help: "Total number of trades disclaimed by exclusion language",
		},
	)
)
