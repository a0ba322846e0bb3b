package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_submissions_total", Help: "Contact form submissions by result."},
		[]string{"result"},
	)
	DiagnosticProbes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "diagnostic_probes_total", Help: "Database diagnostic probes by outcome."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

const (
	ResultOK              = "ok"
	ResultValidationError = "validation_error"
	ResultStoreError      = "store_error"
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContactSubmissions)
	reg.MustRegister(DiagnosticProbes)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
