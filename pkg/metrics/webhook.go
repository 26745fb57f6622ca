package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WebhookMetrics records gateway webhook traffic and its outcomes.
type WebhookMetrics struct {
	events    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	purchases prometheus.Counter
}

// NewWebhookMetrics registers the webhook metrics on the provided registerer.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		return &WebhookMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_total",
		Help: "Webhook deliveries by event type and outcome.",
	}, []string{"event", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webhook_handling_seconds",
		Help:    "Time spent handling a webhook delivery.",
		Buckets: prometheus.DefBuckets,
	}, []string{"event"})
	purchases := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "purchases_created_total",
		Help: "Purchase records written to the store.",
	})
	reg.MustRegister(events, duration, purchases)
	return &WebhookMetrics{
		events:    events,
		duration:  duration,
		purchases: purchases,
	}
}

// ObserveEvent increments the delivery counter for the event/outcome pair.
func (m *WebhookMetrics) ObserveEvent(event, outcome string) {
	if m == nil || m.events == nil {
		return
	}
	m.events.WithLabelValues(normalizeLabel(event), normalizeLabel(outcome)).Inc()
}

// ObserveDuration records handling time for the named event.
func (m *WebhookMetrics) ObserveDuration(event string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(event)).Observe(duration.Seconds())
}

// IncPurchase counts one persisted purchase record.
func (m *WebhookMetrics) IncPurchase() {
	if m == nil || m.purchases == nil {
		return
	}
	m.purchases.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
