// Package metrics defines all custom Prometheus metrics for the account API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry at init time via promauto;
// the /metrics endpoint exposes them together with the echoprometheus request
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid" (validation failure), or "duplicate"
//     (lost the unique-email race at insert time)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" (validation failure), or
//     "unauthenticated" (unknown email or wrong password; a single bucket,
//     matching the uniform client-facing error)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRevocationsTotal counts tokens revoked by explicit logout.
var TokenRevocationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_revocations_total",
		Help:      "Total number of session tokens revoked via logout.",
	},
)
