// Package kafka adapts the messaging contracts to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"payswitch/internal/messaging"
	"payswitch/pkg/metrics"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a new Kafka publisher. Messages are hashed by key so
// events for one payment land on the same partition.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{writer: writer}
}

// Publish sends an envelope to Kafka.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}

	start := time.Now()
	err = p.writer.WriteMessages(ctx, msg)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.KafkaPublishDuration.WithLabelValues(p.writer.Topic, status).Observe(time.Since(start).Seconds())

	if err != nil {
		slog.ErrorContext(ctx, "failed to publish message",
			"topic", p.writer.Topic, "key", env.Key, "error", err)
		return err
	}

	slog.DebugContext(ctx, "message published",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID, "type", env.Type)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
