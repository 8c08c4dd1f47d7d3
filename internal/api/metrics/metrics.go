// Package metrics defines the custom Prometheus metrics for the assessment
// service. It is the single source of truth for metric names, labels, and
// help strings; registration happens implicitly via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assessment"

// AssessmentsCreatedTotal counts created assessments by management level.
var AssessmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of assessments created, by management level.",
	},
	[]string{"management_level"},
)

// AssessmentsUpdatedTotal counts successful assessment updates.
var AssessmentsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_updated_total",
		Help:      "Total number of assessments updated.",
	},
)

// AssessmentsDeletedTotal counts successful assessment deletions.
var AssessmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_deleted_total",
		Help:      "Total number of assessments deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// InsightRequestsTotal counts narrative insight requests reaching the
// generator service (including fallback responses).
var InsightRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insight_requests_total",
		Help:      "Total number of AI insight requests served.",
	},
)
