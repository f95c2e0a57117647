// Package metrics defines and registers all custom Prometheus metrics for
// the members portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register with the default Prometheus registry at package
// load; the echoprometheus handler on /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// SignupsTotal counts accounts created through the signup form.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "failure" (bad credentials), or "invalid" (malformed form)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RoleChangesTotal counts admin promote/demote actions.
// Label:
//   - action: "promote" or "demote"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role changes applied by admins.",
	},
	[]string{"action"},
)

// SessionsDestroyedTotal counts explicit logouts (expiry-based destruction
// happens in the database and is not counted here).
var SessionsDestroyedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed via logout.",
	},
)
