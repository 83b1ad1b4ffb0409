package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "railbook"

// Outcome label values.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeDeclined  = "declined"
	OutcomeAbandoned = "abandoned"
	OutcomeFailed    = "failed"
)

// Metrics owns a private registry so tests can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	BookingsConfirmed  *prometheus.CounterVec
	BookingsCancelled  *prometheus.CounterVec
	PaymentAttempts    *prometheus.CounterVec
	PaymentLatency     prometheus.Histogram
	SeatHoldConflicts  prometheus.Counter
	IntegrityFailures  *prometheus.CounterVec
	AttemptTransitions *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		BookingsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_confirmed_total",
			Help:      "Bookings committed to the ledger.",
		}, []string{"class_type", "payment_method"}),
		BookingsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Bookings moved from confirmed to cancelled.",
		}, []string{"class_type"}),
		PaymentAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_attempts_total",
			Help:      "Payment attempts by method and outcome.",
		}, []string{"method", "outcome"}),
		PaymentLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_gateway_seconds",
			Help:      "Time spent waiting on the payment gateway.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 3, 5, 10, 30},
		}),
		SeatHoldConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seat_hold_conflicts_total",
			Help:      "Seat hold requests rejected because another attempt holds a seat.",
		}),
		IntegrityFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_failures_total",
			Help:      "Fatal integrity violations such as duplicate PNRs.",
		}, []string{"kind"}),
		AttemptTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempt_transitions_total",
			Help:      "Booking attempt state changes by target state.",
		}, []string{"state"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BookingsConfirmed,
		m.BookingsCancelled,
		m.PaymentAttempts,
		m.PaymentLatency,
		m.SeatHoldConflicts,
		m.IntegrityFailures,
		m.AttemptTransitions,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
