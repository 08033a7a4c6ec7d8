// Package metrics exposes Prometheus counters for the ingestion pipeline.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SubmissionsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_received_total",
			Help: "Total number of contact submissions received",
		},
	)

	SubmissionsAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_accepted_total",
			Help: "Total number of contact submissions persisted",
		},
	)

	SubmissionsRejectedInvalidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_rejected_invalid_total",
			Help: "Total number of contact submissions rejected by validation",
		},
	)

	SubmissionsRejectedRateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_rejected_rate_limited_total",
			Help: "Total number of contact submissions rejected by the rate limiter",
		},
	)

	SubmissionStoreFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submission_store_failures_total",
			Help: "Total number of submission store errors (count or insert)",
		},
	)

	NotificationFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_notification_failures_total",
			Help: "Total number of failed submission notifications",
		},
	)
)

// Register registers all Prometheus metrics with the default registry.
func Register() {
	prometheus.MustRegister(SubmissionsReceivedTotal)
	prometheus.MustRegister(SubmissionsAcceptedTotal)
	prometheus.MustRegister(SubmissionsRejectedInvalidTotal)
	prometheus.MustRegister(SubmissionsRejectedRateLimitedTotal)
	prometheus.MustRegister(SubmissionStoreFailuresTotal)
	prometheus.MustRegister(NotificationFailuresTotal)
}
