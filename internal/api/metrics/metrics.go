// Package metrics defines and registers all custom Prometheus metrics for the
// minimart storefront. It is the single source of truth for metric names,
// labels, and help strings; request-level metrics come from the
// echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "rejected", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CartOpsTotal counts cart mutations by operation and outcome.
// Labels:
//   - op: "add", "remove"
//   - result: "success" or "failure"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart add/remove operations, by result.",
	},
	[]string{"op", "result"},
)

// CheckoutsTotal counts checkout attempts by outcome.
// Label:
//   - result: "success" or "empty_cart"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by result.",
	},
	[]string{"result"},
)

// PaymentsTotal counts payment attempts by outcome.
// Label:
//   - result: "success" or "no_checkout"
var PaymentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Total number of payment attempts, by result.",
	},
	[]string{"result"},
)

// UpstreamFailuresTotal counts data-access calls that ended in a transport
// failure or unexpected status.
// Label:
//   - endpoint: logical upstream operation (e.g. "validate", "get_item")
var UpstreamFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_failures_total",
		Help:      "Total number of failed data-access layer calls, by endpoint.",
	},
	[]string{"endpoint"},
)
