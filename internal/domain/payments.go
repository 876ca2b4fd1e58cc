// Package domain holds the canonical, processor-agnostic request and
// response shapes exchanged between the orchestration engine and connector
// adapters. Everything here is plain data: entities are created per call and
// discarded once the canonical result is handed back.
package domain

// CaptureMethod describes how a payment is captured after authorization.
type CaptureMethod string

const (
	CaptureAutomatic           CaptureMethod = "automatic"
	CaptureSequentialAutomatic CaptureMethod = "sequential_automatic"
	CaptureManual              CaptureMethod = "manual"
	CaptureManualMultiple      CaptureMethod = "manual_multiple"
	CaptureScheduled           CaptureMethod = "scheduled"
)

// AttemptStatus is the canonical state of a payment attempt.
type AttemptStatus string

const (
	AttemptStarted               AttemptStatus = "started"
	AttemptAuthorized            AttemptStatus = "authorized"
	AttemptCharged               AttemptStatus = "charged"
	AttemptPending               AttemptStatus = "pending"
	AttemptAuthenticationPending AttemptStatus = "authentication_pending"
	AttemptCaptureInitiated      AttemptStatus = "capture_initiated"
	AttemptVoided                AttemptStatus = "voided"
	AttemptVoidFailed            AttemptStatus = "void_failed"
	AttemptFailure               AttemptStatus = "failure"
)

// PaymentMethod is the coarse payment instrument category.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// PaymentMethodType is the concrete instrument within a PaymentMethod.
type PaymentMethodType string

const (
	PaymentMethodTypeCredit    PaymentMethodType = "credit"
	PaymentMethodTypeDebit     PaymentMethodType = "debit"
	PaymentMethodTypeGooglePay PaymentMethodType = "google_pay"
	PaymentMethodTypeApplePay  PaymentMethodType = "apple_pay"
)

// CardNetwork is a card scheme identifier.
type CardNetwork string

const (
	CardNetworkAmex            CardNetwork = "american_express"
	CardNetworkCartesBancaires CardNetwork = "cartes_bancaires"
	CardNetworkDinersClub      CardNetwork = "diners_club"
	CardNetworkDiscover        CardNetwork = "discover"
	CardNetworkJCB             CardNetwork = "jcb"
	CardNetworkMastercard      CardNetwork = "mastercard"
	CardNetworkVisa            CardNetwork = "visa"
	CardNetworkUnionPay        CardNetwork = "union_pay"
)

// Card carries raw card details for direct card payments.
type Card struct {
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
	HolderName  string
}

// PaymentMethodData identifies the instrument used for an authorization or
// tokenization call. Exactly one field is set.
type PaymentMethodData struct {
	Card  *Card
	Token *string
}

// AuthorizeRequest asks the processor to authorize (and optionally capture)
// a payment.
type AuthorizeRequest struct {
	Amount        MinorUnit
	Currency      Currency
	PaymentMethod PaymentMethodData
	CaptureMethod CaptureMethod
	// Reference is the merchant-assigned payment attempt id.
	Reference  string
	SuccessURL *string
	FailureURL *string
}

// CaptureRequest captures a previously authorized payment, in full or in
// part.
type CaptureRequest struct {
	ConnectorTransactionID string
	Amount                 MinorUnit
	Currency               Currency
	Reference              string
	// MultipleCapture marks one capture out of several against the same
	// authorization; the processor must not treat it as final.
	MultipleCapture bool
}

// VoidRequest cancels an uncaptured authorization.
type VoidRequest struct {
	ConnectorTransactionID string
	Reference              string
}

// SyncType discriminates between syncing a single payment and reconciling
// the batch of capture actions recorded against it.
type SyncType string

const (
	SyncSinglePayment   SyncType = "single_payment"
	SyncMultipleCapture SyncType = "multiple_capture"
)

// SyncRequest fetches the processor's current view of a payment.
type SyncRequest struct {
	ConnectorTransactionID string
	SyncType               SyncType
	CaptureMethod          CaptureMethod
}

// PaymentsResponse is the canonical outcome of any payment flow.
type PaymentsResponse struct {
	Status AttemptStatus
	// ResourceID is the processor's transaction id.
	ResourceID  string
	Reference   *string
	RedirectURL *string
	// Captures is populated only by a multi-capture sync.
	Captures []CaptureSyncResponse
}

// CaptureSyncResponse is the reconciled state of one capture action.
type CaptureSyncResponse struct {
	ActionID  string
	Status    AttemptStatus
	Amount    MinorUnit
	Reference *string
}
