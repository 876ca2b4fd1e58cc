// Package connector defines the generic multi-flow integration framework
// every payment-processor adapter implements: a uniform request-build /
// response-parse / error-classify lifecycle per flow, plus the shared
// contracts (identity, auth, amount conversion, error taxonomy) that hold
// across flows.
package connector

import (
	"net/http"

	"payswitch/internal/domain"
)

// CurrencyUnit declares which unit convention a processor exchanges amounts
// in.
type CurrencyUnit string

const (
	CurrencyUnitMinor CurrencyUnit = "minor"
	CurrencyUnitMajor CurrencyUnit = "major"
)

// Config carries per-processor endpoint configuration resolved from the
// environment. It is built once at startup and shared read-only.
type Config struct {
	BaseURLs map[string]string
}

// BaseURL returns the configured endpoint for a connector id, or "" if the
// connector is not configured.
func (c *Config) BaseURL(connectorID string) string {
	return c.BaseURLs[connectorID]
}

// Common is the per-adapter identity and shared-behavior contract.
// Implementations are immutable after construction and safe for concurrent
// use.
type Common interface {
	// ID returns the stable adapter identifier.
	ID() string
	// CurrencyUnit declares the unit convention amounts are exchanged in.
	// It must match what the adapter's amount conversion produces.
	CurrencyUnit() CurrencyUnit
	// CommonContentType is the default content type for JSON flows.
	CommonContentType() string
	// BaseURL resolves the processor endpoint from configuration.
	BaseURL(cfg *Config) string
	// AuthHeaders builds the auth header set from credentials, failing with
	// ErrFailedToObtainAuthType on a credential-shape mismatch.
	AuthHeaders(auth domain.AuthType) (http.Header, error)
	// BuildErrorResponse canonicalizes a non-2xx processor response.
	BuildErrorResponse(res Response) (domain.ErrorResponse, error)
}

// Validation holds pre-flight compatibility checks that run before any
// request is built, independent of flow.
type Validation interface {
	ValidateCaptureMethod(method domain.CaptureMethod) error
}

// FileUploadValidation rejects unsupported files before the upload flow
// builds a request.
type FileUploadValidation interface {
	ValidateFileUpload(purpose domain.FilePurpose, fileSize int, fileType string) error
}

// PaymentAction identifies why the orchestration engine is returning to the
// connector after a redirect.
type PaymentAction string

const (
	ActionPaymentSync                  PaymentAction = "payment_sync"
	ActionCompleteAuthorize            PaymentAction = "complete_authorize"
	ActionAuthenticateCompleteAuthorize PaymentAction = "authenticate_complete_authorize"
)

// RedirectBehavior tells the orchestration engine whether a redirect
// completion should trigger a connector call.
type RedirectBehavior string

const (
	RedirectTrigger RedirectBehavior = "trigger"
	RedirectAvoid   RedirectBehavior = "avoid"
)

// Info is static descriptive metadata about a connector.
type Info struct {
	DisplayName string
	Description string
	Category    string
}

// FeatureStatus marks a capability as available or not for a payment
// method.
type FeatureStatus string

const (
	FeatureSupported    FeatureStatus = "supported"
	FeatureNotSupported FeatureStatus = "not_supported"
)

// PaymentMethodDetails describes what a connector supports for one payment
// method type.
type PaymentMethodDetails struct {
	Mandates                FeatureStatus
	Refunds                 FeatureStatus
	SupportedCaptureMethods []domain.CaptureMethod
	SupportedCardNetworks   []domain.CardNetwork
}

// SupportedPaymentMethods maps payment method -> method type -> details.
// Constructed once at process start and never mutated.
type SupportedPaymentMethods map[domain.PaymentMethod]map[domain.PaymentMethodType]PaymentMethodDetails

// Add records details for a (method, type) pair.
func (s SupportedPaymentMethods) Add(method domain.PaymentMethod, methodType domain.PaymentMethodType, details PaymentMethodDetails) {
	if s[method] == nil {
		s[method] = make(map[domain.PaymentMethodType]PaymentMethodDetails)
	}
	s[method][methodType] = details
}
