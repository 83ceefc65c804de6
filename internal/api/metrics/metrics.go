// Package metrics defines the custom Prometheus metrics for the community
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aciky"

// LoginAttemptsTotal counts login attempts by outcome.
// Labels:
//   - outcome: "success", "invalid_credentials", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through registration.",
	},
)

// RateLimitedTotal counts requests rejected with 429, per limiter.
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by a rate limiter.",
	},
	[]string{"limiter"},
)

// AuthzDeniedTotal counts role-gate rejections, per gate outcome.
// Labels:
//   - reason: "unauthenticated", "forbidden"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests rejected by the authorization gates.",
	},
	[]string{"reason"},
)
