// Package metrics defines and registers all custom Prometheus metrics
// for the HCM API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto; HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hcm"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers bad credentials and
//     inactive accounts, which are indistinguishable on the wire)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts explicit validate-token calls.
// Label:
//   - result: "valid" or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of explicit token validation checks, by result.",
	},
	[]string{"result"},
)

// EmployeesCreatedTotal counts successfully created employee records.
var EmployeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_created_total",
		Help:      "Total number of employee records created.",
	},
)
