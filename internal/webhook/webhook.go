// Package webhook defines the incoming-webhook contract a connector adapter
// implements so the switch can authenticate, classify and route processor
// notifications.
package webhook

import (
	"errors"
	"net/http"
	"time"

	"payswitch/internal/domain"
)

var (
	// ErrSignatureNotFound is returned when the expected signature header
	// is absent or malformed.
	ErrSignatureNotFound = errors.New("webhook signature not found")

	// ErrReferenceIDNotFound is returned when no usable transaction
	// reference can be extracted from the webhook body.
	ErrReferenceIDNotFound = errors.New("webhook reference id not found")

	// ErrEventTypeNotFound is returned when the event type cannot be
	// parsed from the webhook body.
	ErrEventTypeNotFound = errors.New("webhook event type not found")

	// ErrBodyDecoding is returned when the webhook body does not match the
	// processor's schema.
	ErrBodyDecoding = errors.New("webhook body decoding failed")
)

// RequestDetails is the inbound webhook call as seen at the HTTP edge.
type RequestDetails struct {
	Headers http.Header
	Body    []byte
}

// SignatureAlgorithm names the keyed-hash scheme a processor signs
// webhooks with.
type SignatureAlgorithm string

const (
	HMACSHA256 SignatureAlgorithm = "hmac_sha256"
)

// EventType is the canonical classification of an incoming webhook.
type EventType string

const (
	EventPaymentAuthorized EventType = "payment_authorized"
	EventPaymentSucceeded  EventType = "payment_succeeded"
	EventPaymentProcessing EventType = "payment_processing"
	EventPaymentFailed     EventType = "payment_failed"
	EventPaymentVoided     EventType = "payment_voided"
	EventRefundSucceeded   EventType = "refund_succeeded"
	EventRefundFailed      EventType = "refund_failed"
	EventDisputeOpened     EventType = "dispute_opened"
	EventDisputeExpired    EventType = "dispute_expired"
	EventDisputeAccepted   EventType = "dispute_accepted"
	EventDisputeCancelled  EventType = "dispute_cancelled"
	EventDisputeChallenged EventType = "dispute_challenged"
	EventDisputeWon        EventType = "dispute_won"
	EventDisputeLost       EventType = "dispute_lost"
	EventNotSupported      EventType = "event_not_supported"
)

// EventClass groups event types for routing.
type EventClass string

const (
	ClassPayments EventClass = "payments"
	ClassRefunds  EventClass = "refunds"
	ClassDisputes EventClass = "disputes"
)

// Class returns the routing class of an event type.
func (t EventType) Class() EventClass {
	switch t {
	case EventRefundSucceeded, EventRefundFailed:
		return ClassRefunds
	case EventDisputeOpened, EventDisputeExpired, EventDisputeAccepted,
		EventDisputeCancelled, EventDisputeChallenged, EventDisputeWon, EventDisputeLost:
		return ClassDisputes
	default:
		return ClassPayments
	}
}

// PaymentReferenceKind says which id space a payment reference lives in.
type PaymentReferenceKind string

const (
	PaymentAttemptID       PaymentReferenceKind = "payment_attempt_id"
	ConnectorTransactionID PaymentReferenceKind = "connector_transaction_id"
)

// RefundReferenceKind says which id space a refund reference lives in.
type RefundReferenceKind string

const (
	RefundID          RefundReferenceKind = "refund_id"
	ConnectorRefundID RefundReferenceKind = "connector_refund_id"
)

// PaymentReference identifies the payment a webhook refers to.
type PaymentReference struct {
	Kind PaymentReferenceKind
	ID   string
}

// RefundReference identifies the refund a webhook refers to.
type RefundReference struct {
	Kind RefundReferenceKind
	ID   string
}

// ObjectReference is the reference-id variant extracted from a webhook.
// Exactly one field is set.
type ObjectReference struct {
	Payment *PaymentReference
	Refund  *RefundReference
}

// DisputePayload is the canonical dispute data carried by chargeback-class
// webhooks.
type DisputePayload struct {
	Amount              string
	Currency            domain.Currency
	DisputeStage        domain.DisputeStage
	ConnectorDisputeID  string
	ConnectorReason     *string
	ConnectorReasonCode *string
	ChallengeRequiredBy *time.Time
	ConnectorStatus     string
	CreatedAt           *time.Time
	UpdatedAt           *time.Time
}

// IncomingWebhook is the single-pass verification and extraction pipeline
// an adapter provides for its processor's webhooks.
type IncomingWebhook interface {
	// SignatureAlgorithm declares the keyed-hash algorithm in use.
	SignatureAlgorithm() SignatureAlgorithm
	// Signature extracts the raw signature bytes from the request.
	Signature(req RequestDetails) ([]byte, error)
	// VerificationMessage returns the exact byte sequence that was signed.
	VerificationMessage(req RequestDetails) ([]byte, error)
	// ObjectReferenceID extracts the payment or refund reference the
	// webhook refers to.
	ObjectReferenceID(req RequestDetails) (ObjectReference, error)
	// EventType classifies the webhook into the canonical enumeration.
	EventType(req RequestDetails) (EventType, error)
	// ResourceObject returns the full canonical payload for the event's
	// class, for downstream auditing and storage.
	ResourceObject(req RequestDetails) (any, error)
	// DisputeDetails extracts the dispute payload. Only meaningful for
	// chargeback-class events.
	DisputeDetails(req RequestDetails) (DisputePayload, error)
}
