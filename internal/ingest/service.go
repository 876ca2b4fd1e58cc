// Package ingest is the webhook ingestion service: it authenticates
// processor notifications at the HTTP edge, classifies them, and fans the
// canonical events out through the broker.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"payswitch/internal/messaging"
	"payswitch/internal/webhook"
	"payswitch/pkg/metrics"
)

var (
	// ErrUnknownConnector is returned for a webhook aimed at a connector
	// that is not registered.
	ErrUnknownConnector = errors.New("unknown connector")

	// ErrVerificationFailed is returned when the signature does not match.
	ErrVerificationFailed = errors.New("webhook verification failed")
)

// Registration couples a connector's webhook pipeline with its shared
// secret.
type Registration struct {
	Hook   webhook.IncomingWebhook
	Secret []byte
}

// Result is what the edge reports back after processing one webhook.
type Result struct {
	EventType webhook.EventType
	Published bool
}

// Service drives the verify-classify-publish pipeline for every registered
// connector.
type Service struct {
	connectors map[string]Registration
	publisher  messaging.Publisher
}

func NewService(connectors map[string]Registration, publisher messaging.Publisher) *Service {
	return &Service{connectors: connectors, publisher: publisher}
}

// Process runs one webhook through the pipeline. Unsupported event types
// are acknowledged without publishing so the processor does not retry them.
func (s *Service) Process(ctx context.Context, connectorID string, req webhook.RequestDetails) (Result, error) {
	reg, ok := s.connectors[connectorID]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownConnector, connectorID)
	}

	verified, err := webhook.VerifySignature(reg.Hook, req, reg.Secret)
	if err != nil {
		metrics.WebhookVerificationFailures.WithLabelValues(connectorID).Inc()
		return Result{}, err
	}
	if !verified {
		metrics.WebhookVerificationFailures.WithLabelValues(connectorID).Inc()
		return Result{}, ErrVerificationFailed
	}

	eventType, err := reg.Hook.EventType(req)
	if err != nil {
		return Result{}, err
	}
	if eventType == webhook.EventNotSupported {
		metrics.WebhooksReceived.WithLabelValues(connectorID, "none", "ignored").Inc()
		slog.InfoContext(ctx, "webhook event ignored", "connector", connectorID)
		return Result{EventType: eventType}, nil
	}

	reference, err := reg.Hook.ObjectReferenceID(req)
	if err != nil {
		return Result{}, err
	}
	resource, err := reg.Hook.ResourceObject(req)
	if err != nil {
		return Result{}, err
	}

	class := eventType.Class()
	envelope, err := messaging.NewEnvelope(envelopeKey(reference), envelopeType(class), connectorID, resource)
	if err != nil {
		return Result{}, fmt.Errorf("build envelope: %w", err)
	}

	if err := s.publisher.Publish(ctx, envelope); err != nil {
		metrics.WebhooksReceived.WithLabelValues(connectorID, string(class), "publish_failed").Inc()
		return Result{}, fmt.Errorf("publish webhook event: %w", err)
	}

	metrics.WebhooksReceived.WithLabelValues(connectorID, string(class), "published").Inc()
	slog.InfoContext(ctx, "webhook event published",
		"connector", connectorID, "event_type", eventType, "event_id", envelope.EventID)

	return Result{EventType: eventType, Published: true}, nil
}

func envelopeKey(ref webhook.ObjectReference) string {
	switch {
	case ref.Payment != nil:
		return ref.Payment.ID
	case ref.Refund != nil:
		return ref.Refund.ID
	default:
		return ""
	}
}

func envelopeType(class webhook.EventClass) string {
	switch class {
	case webhook.ClassRefunds:
		return messaging.EventTypeRefundUpdated
	case webhook.ClassDisputes:
		return messaging.EventTypeDisputeUpdated
	default:
		return messaging.EventTypePaymentUpdated
	}
}
