// Package metrics defines all custom Prometheus metrics for the membership
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "membership"

// RegistrationsTotal counts accepted member registrations.
// Label:
//   - result: "created" for a new record, "replayed" when an Idempotency-Key
//     matched an earlier submission
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of member registrations accepted.",
	},
	[]string{"result"},
)

// RegistrationErrorsTotal counts registrations that failed.
// Label:
//   - reason: "validation" or "internal"
var RegistrationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_errors_total",
		Help:      "Total number of member registrations rejected or failed.",
	},
	[]string{"reason"},
)

// SearchesTotal counts member search requests that completed successfully.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of member searches served.",
	},
)

// UpdatesTotal counts partial-update requests.
// Label:
//   - result: "updated" or "not_found"
var UpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_total",
		Help:      "Total number of member update requests, by outcome.",
	},
	[]string{"result"},
)

// AdminLoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "rejected"
var AdminLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_logins_total",
		Help:      "Total number of admin login attempts, by outcome.",
	},
	[]string{"result"},
)
