package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payswitch",
			Subsystem: "webhook",
			Name:      "received_total",
			Help:      "Total number of incoming webhooks by connector and outcome",
		},
		[]string{"connector", "event_class", "outcome"},
	)

	WebhookVerificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payswitch",
			Subsystem: "webhook",
			Name:      "verification_failures_total",
			Help:      "Total number of webhooks that failed signature verification",
		},
		[]string{"connector"},
	)

	KafkaPublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "payswitch",
			Subsystem: "kafka",
			Name:      "publish_duration_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "status"},
	)
)

func init() {
	Registry.MustRegister(WebhooksReceived, WebhookVerificationFailures, KafkaPublishDuration)
}
