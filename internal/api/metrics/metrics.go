// Package metrics defines and registers all custom Prometheus metrics for
// the skincare tracking API. It is the single source of truth for metric
// names, labels, and help strings. Collectors register themselves with the
// default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skincare"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "bad_credentials" (login) or "invalid_token" (middleware)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// EntriesCreatedTotal counts created records, labelled by resource kind.
// Label:
//   - kind: "product", "usage_log", "diet_log", "wellbeing_log", "profile"
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of records created, by resource kind.",
	},
	[]string{"kind"},
)

// DietConflictsTotal counts rejected duplicate-day diet logs.
var DietConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "diet_conflicts_total",
		Help:      "Total number of diet log creations rejected as duplicate days.",
	},
)
