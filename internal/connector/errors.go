package connector

import (
	"errors"
	"fmt"
)

var (
	// ErrFailedToObtainAuthType is returned when the configured credentials
	// do not match the shape the adapter expects.
	ErrFailedToObtainAuthType = errors.New("failed to obtain authentication type")

	// ErrResponseDeserialization is returned when a processor response does
	// not match the expected schema.
	ErrResponseDeserialization = errors.New("response deserialization failed")

	// ErrResponseHandling is returned when a decoded response cannot be
	// converted into the canonical shape.
	ErrResponseHandling = errors.New("response handling failed")

	// ErrMissingConnectorTransactionID is returned when a flow needs the
	// processor's transaction id and none is available.
	ErrMissingConnectorTransactionID = errors.New("missing connector transaction id")
)

// NotImplementedError marks a flow or capability a connector does not
// provide. It is an explicit, typed outcome rather than a generic failure.
type NotImplementedError struct {
	Message string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s", e.Message)
}

// NewNotImplemented builds a NotImplementedError for an unsupported flow.
func NewNotImplemented(flow Flow) error {
	return &NotImplementedError{Message: string(flow)}
}

// NewCaptureMethodNotSupported reports a capture method a connector cannot
// honor, naming both the method and the connector.
func NewCaptureMethodNotSupported(method, connectorID string) error {
	return &NotImplementedError{Message: fmt.Sprintf("%s capture method for connector %s", method, connectorID)}
}

// FileValidationError rejects a file before any upload request is built.
type FileValidationError struct {
	Reason string
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("file validation failed: %s", e.Reason)
}
