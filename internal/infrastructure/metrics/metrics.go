package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DonationMetrics holds all donation pipeline metrics.
type DonationMetrics struct {
	// Payment orders opened at the gateway
	DonationsCreatedTotal       prometheus.CounterVec
	DonationsCreatedAmountTotal prometheus.CounterVec

	// Reconciled to success
	DonationsSucceededTotal       prometheus.CounterVec
	DonationsSucceededAmountTotal prometheus.CounterVec

	// Reconciled to failed
	DonationsFailedTotal prometheus.CounterVec

	// Reconciliation behavior
	ReconcileDuration      prometheus.HistogramVec
	ReconcileNoopTotal     prometheus.CounterVec
	WebhookDuplicatesTotal prometheus.Counter
	GatewayErrorsTotal     prometheus.CounterVec

	// Consistency sweep
	SweepDriftRepairedTotal prometheus.Counter
}

func NewDonationMetrics() *DonationMetrics {
	return &DonationMetrics{
		DonationsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_created_total",
				Help: "Payment orders opened, by collection category",
			},
			[]string{"category"},
		),

		DonationsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_created_amount_total",
				Help: "Total amount of payment orders opened",
			},
			[]string{"category", "currency"},
		),

		DonationsSucceededTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_succeeded_total",
				Help: "Donations reconciled to success, by trigger",
			},
			[]string{"trigger"},
		),

		DonationsSucceededAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_succeeded_amount_total",
				Help: "Total amount reconciled into collection balances",
			},
			[]string{"currency"},
		),

		DonationsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_failed_total",
				Help: "Donations reconciled to failed, by trigger",
			},
			[]string{"trigger"},
		),

		ReconcileDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "donation_reconcile_duration_seconds",
				Help:    "Reconciliation latency",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"trigger"},
		),

		ReconcileNoopTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_reconcile_noop_total",
				Help: "Reconcile calls that found the donation already terminal",
			},
			[]string{"trigger"},
		),

		WebhookDuplicatesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payment_webhook_duplicates_total",
				Help: "Webhook deliveries for already-reconciled orders",
			},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_gateway_errors_total",
				Help: "Gateway call failures, by operation",
			},
			[]string{"operation"},
		),

		SweepDriftRepairedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "collection_sweep_drift_repaired_total",
				Help: "Collections whose totals were repaired by the consistency sweep",
			},
		),
	}
}

func (m *DonationMetrics) RecordDonationCreated(category, currency string, amount float64) {
	m.DonationsCreatedTotal.WithLabelValues(category).Inc()
	m.DonationsCreatedAmountTotal.WithLabelValues(category, currency).Add(amount)
}

func (m *DonationMetrics) RecordDonationSucceeded(trigger, currency string, amount float64) {
	m.DonationsSucceededTotal.WithLabelValues(trigger).Inc()
	m.DonationsSucceededAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *DonationMetrics) RecordDonationFailed(trigger string) {
	m.DonationsFailedTotal.WithLabelValues(trigger).Inc()
}

func (m *DonationMetrics) RecordReconcileNoop(trigger string) {
	m.ReconcileNoopTotal.WithLabelValues(trigger).Inc()
}

func (m *DonationMetrics) RecordGatewayError(operation string) {
	m.GatewayErrorsTotal.WithLabelValues(operation).Inc()
}
