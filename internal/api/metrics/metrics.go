// Package metrics defines and registers all custom Prometheus metrics for
// the immunization API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "immunization"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "inactive", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the auth middleware.
// Label:
//   - reason: "missing", "malformed", "invalid", "expired", or "revoked"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// ProcedureDuration measures stored procedure round-trip time.
// Label:
//   - procedure: procedure name (e.g. "sp_children_get")
var ProcedureDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "procedure_duration_seconds",
		Help:      "Duration of stored procedure calls.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"procedure"},
)

// ConstraintViolationsTotal counts business rule rejections raised by the
// store's procedures (error numbers 45000-45999).
// Label:
//   - resource: the resource family whose procedure raised (e.g. "vaccination")
var ConstraintViolationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "constraint_violations_total",
		Help:      "Total number of domain constraint violations raised by stored procedures.",
	},
	[]string{"resource"},
)
