// Package metrics registers the Prometheus collectors for the browser.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequests counts backend API calls by operation and outcome.
	GatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memory_browser",
			Name:      "gateway_requests_total",
			Help:      "Backend API requests issued by the gateway client.",
		},
		[]string{"operation", "outcome"},
	)

	// WorkflowRuns counts UI workflow executions by workflow and outcome.
	WorkflowRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "memory_browser",
			Name:      "workflow_runs_total",
			Help:      "UI workflow executions by terminal outcome.",
		},
		[]string{"workflow", "outcome"},
	)
)
