// Package metrics defines the custom Prometheus metrics for the event
// platform API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventease"

// RegistrationsTotal counts registration attempts.
// Labels:
//   - kind: "customer", "vendor", or "organizer"
//   - outcome: "success", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by account kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SyncTotal counts identity sync requests.
// Label:
//   - outcome: "existing", "created", "conflict", "invalid", or "error"
var SyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_sync_total",
		Help:      "Total number of identity sync requests, by outcome.",
	},
	[]string{"outcome"},
)

// BookingsCacheTotal counts booking-cache lookups.
// Label:
//   - result: "hit" or "miss"
var BookingsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cache_total",
		Help:      "Total number of booking cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
