package domain

// Sentinels used when a processor error response carries no usable code or
// message.
const (
	NoErrorCode    = "No error code"
	NoErrorMessage = "No error message"
)

// ErrorResponse is the canonical shape of a processor-reported failure. A
// declined payment is an expected business outcome, so it travels through
// the same path as a success, just as a different variant.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
	// Reason joins every error string the processor returned, regardless of
	// which one was surfaced as Code/Message.
	Reason                 *string
	ConnectorTransactionID *string
	NetworkAdviceCode      *string
	NetworkDeclineCode     *string
	NetworkErrorMessage    *string
	// AttemptStatus is left unset by the generic error builder; specific
	// flows may override it.
	AttemptStatus *AttemptStatus
}
