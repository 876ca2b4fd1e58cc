// Package messaging defines the broker-facing contracts for fanning
// verified webhook events out to the rest of the switch.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the webhook ingestion service. The payload is
// the connector's canonical resource object for the event class.
const (
	EventTypePaymentUpdated = "payment.updated"
	EventTypeRefundUpdated  = "refund.updated"
	EventTypeDisputeUpdated = "dispute.updated"
)

// Envelope wraps a message with metadata for tracing and routing. Key
// carries the object reference so events for one payment stay ordered
// within a partition.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Connector string          `json:"connector"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope creates a new envelope with a generated event ID.
func NewEnvelope(key, msgType, connector string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Connector: connector,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

//go:generate mockgen -source types.go -destination mock_types.go -package messaging

// Publisher sends messages to a message broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes a single message.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker consumes messages from a message broker.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
