package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	BookingTransitions *prometheus.CounterVec
	DriverMessages     *prometheus.CounterVec
	OutboundMessages   *prometheus.CounterVec
	WebhooksReceived   *prometheus.CounterVec
	PriceValidations   *prometheus.CounterVec
	RefundsIssued      prometheus.Counter
	ProviderLatency    *prometheus.HistogramVec
	CircuitState       *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the dispatch metrics on a fresh registry
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return newMetrics(namespace, reg, reg)
}

func newMetrics(namespace string, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions",
		}, []string{"from", "to"}),
		DriverMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "driver_messages_total",
			Help:      "Inbound driver replies by parsed intent and outcome",
		}, []string{"intent", "outcome"}),
		OutboundMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_messages_total",
			Help:      "Outbound WhatsApp messages by type and delivery result",
		}, []string{"type", "result"}),
		WebhooksReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhooks_received_total",
			Help:      "Provider webhooks by provider and outcome",
		}, []string{"provider", "outcome"}),
		PriceValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_validations_total",
			Help:      "Client price validations by result",
		}, []string{"result"}),
		RefundsIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_issued_total",
			Help:      "Refunds recorded against payments",
		}),
		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of calls to external providers",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "operation"}),
		CircuitState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		}, []string{"name"}),
		gatherer: gatherer,
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveTransition counts a booking status change
func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(from, to).Inc()
}

// ObserveDriverMessage counts an inbound driver reply
func (m *Metrics) ObserveDriverMessage(intent, outcome string) {
	if m == nil {
		return
	}
	m.DriverMessages.WithLabelValues(intent, outcome).Inc()
}

// ObserveOutbound counts an outbound message attempt
func (m *Metrics) ObserveOutbound(messageType string, success bool) {
	if m == nil {
		return
	}
	result := "sent"
	if !success {
		result = "failed"
	}
	m.OutboundMessages.WithLabelValues(messageType, result).Inc()
}

// ObserveWebhook counts a provider webhook delivery
func (m *Metrics) ObserveWebhook(provider, outcome string) {
	if m == nil {
		return
	}
	m.WebhooksReceived.WithLabelValues(provider, outcome).Inc()
}

// ObservePriceValidation counts a client price check
func (m *Metrics) ObservePriceValidation(valid bool) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "mismatch"
	}
	m.PriceValidations.WithLabelValues(result).Inc()
}

// ObserveRefund counts a recorded refund
func (m *Metrics) ObserveRefund() {
	if m == nil {
		return
	}
	m.RefundsIssued.Inc()
}

// ObserveProviderCall records the latency of one provider call
func (m *Metrics) ObserveProviderCall(provider, operation string, started time.Time) {
	if m == nil {
		return
	}
	m.ProviderLatency.WithLabelValues(provider, operation).Observe(time.Since(started).Seconds())
}

// SetCircuitState records a circuit breaker state change
func (m *Metrics) SetCircuitState(name string, state int) {
	if m == nil {
		return
	}
	m.CircuitState.WithLabelValues(name).Set(float64(state))
}
