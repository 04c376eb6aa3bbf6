// Package metrics defines all custom Prometheus metrics for the staff
// directory API. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staffdir"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "validation", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer-token checks on protected routes.
// Label:
//   - result: "valid", "missing", or "invalid" (invalid covers both
//     tampered and expired tokens; the split is deliberately not recorded)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by outcome.",
	},
	[]string{"result"},
)

// AuthzDecisionsTotal counts role-gate decisions after authentication.
// Label:
//   - decision: "allow" or "deny"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization gate decisions.",
	},
	[]string{"decision"},
)

// PasswordCompareDuration measures the time spent in a single bcrypt
// comparison, queue wait excluded.
var PasswordCompareDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_compare_duration_seconds",
		Help:      "Duration of individual bcrypt password comparisons.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// HashQueueDepth tracks the number of hashing jobs waiting in the pool.
var HashQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hash_queue_depth",
		Help:      "Current number of password hashing jobs pending in the worker pool.",
	},
)
