package checkout

import (
	"fmt"
	"strings"
	"time"

	"payswitch/internal/connector"
	"payswitch/internal/domain"
	"payswitch/internal/webhook"
	"payswitch/pkg/pointers"
)

// checkoutAuth is the credential set this adapter works with. PublicKey
// authenticates tokenization, SecretKey everything else,
// ProcessingChannelID routes payments to the right channel.
type checkoutAuth struct {
	PublicKey           string
	SecretKey           string
	ProcessingChannelID string
}

func authFrom(auth domain.AuthType) (checkoutAuth, error) {
	sig, ok := auth.(domain.SignatureKeyAuth)
	if !ok {
		return checkoutAuth{}, connector.ErrFailedToObtainAuthType
	}
	return checkoutAuth{
		PublicKey:           sig.APIKey,
		SecretKey:           sig.APISecret,
		ProcessingChannelID: sig.Key1,
	}, nil
}

// --- payments ---

type cardSource struct {
	Type        string `json:"type"`
	Number      string `json:"number,omitempty"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	Name        string `json:"name,omitempty"`
	Token       string `json:"token,omitempty"`
}

type paymentsRequest struct {
	Source              cardSource       `json:"source"`
	Amount              domain.MinorUnit `json:"amount"`
	Currency            domain.Currency  `json:"currency"`
	ProcessingChannelID string           `json:"processing_channel_id,omitempty"`
	Reference           string           `json:"reference"`
	Capture             bool             `json:"capture"`
	SuccessURL          *string          `json:"success_url,omitempty"`
	FailureURL          *string          `json:"failure_url,omitempty"`
}

func paymentsRequestFrom(req domain.AuthorizeRequest, amount domain.MinorUnit, auth checkoutAuth) (paymentsRequest, error) {
	var source cardSource
	switch {
	case req.PaymentMethod.Card != nil:
		card := req.PaymentMethod.Card
		source = cardSource{
			Type:        "card",
			Number:      card.Number,
			ExpiryMonth: card.ExpiryMonth,
			ExpiryYear:  card.ExpiryYear,
			CVV:         card.CVC,
			Name:        card.HolderName,
		}
	case req.PaymentMethod.Token != nil:
		source = cardSource{Type: "token", Token: *req.PaymentMethod.Token}
	default:
		return paymentsRequest{}, fmt.Errorf("%w: no payment method data", connector.ErrResponseHandling)
	}

	return paymentsRequest{
		Source:              source,
		Amount:              amount,
		Currency:            req.Currency,
		ProcessingChannelID: auth.ProcessingChannelID,
		Reference:           req.Reference,
		Capture:             autoCapture(req.CaptureMethod),
		SuccessURL:          req.SuccessURL,
		FailureURL:          req.FailureURL,
	}, nil
}

func autoCapture(method domain.CaptureMethod) bool {
	return method == domain.CaptureAutomatic || method == domain.CaptureSequentialAutomatic
}

type paymentLink struct {
	Href string `json:"href"`
}

type paymentsResponse struct {
	ID              string                 `json:"id"`
	Status          checkoutPaymentStatus  `json:"status"`
	Amount          domain.MinorUnit       `json:"amount"`
	Currency        domain.Currency        `json:"currency"`
	Reference       *string                `json:"reference"`
	ResponseCode    *string                `json:"response_code"`
	ResponseSummary *string                `json:"response_summary"`
	Links           map[string]paymentLink `json:"_links"`
}

// declineError surfaces a processor-side decline as the canonical error
// variant. Declines arrive with a 2xx transport status, so this runs from
// the success path.
func (r paymentsResponse) declineError(statusCode int) domain.ErrorResponse {
	code := domain.NoErrorCode
	if r.ResponseCode != nil {
		code = *r.ResponseCode
	}
	message := domain.NoErrorMessage
	if r.ResponseSummary != nil {
		message = *r.ResponseSummary
	}
	status := domain.AttemptFailure
	return domain.ErrorResponse{
		StatusCode:             statusCode,
		Code:                   code,
		Message:                message,
		Reason:                 r.ResponseSummary,
		ConnectorTransactionID: pointers.Ptr(r.ID),
		AttemptStatus:          &status,
	}
}

type checkoutPaymentStatus string

const (
	statusAuthorized   checkoutPaymentStatus = "Authorized"
	statusCaptured     checkoutPaymentStatus = "Captured"
	statusCardVerified checkoutPaymentStatus = "Card Verified"
	statusDeclined     checkoutPaymentStatus = "Declined"
	statusPending      checkoutPaymentStatus = "Pending"
	statusExpired      checkoutPaymentStatus = "Expired"
	statusCanceled     checkoutPaymentStatus = "Canceled"
	statusVoided       checkoutPaymentStatus = "Voided"
)

// attemptStatus maps a processor payment status to the canonical attempt
// status. An authorization under automatic capture is already charged from
// the switch's point of view.
func attemptStatus(status checkoutPaymentStatus, captureMethod domain.CaptureMethod) domain.AttemptStatus {
	switch status {
	case statusAuthorized:
		if autoCapture(captureMethod) {
			return domain.AttemptCharged
		}
		return domain.AttemptAuthorized
	case statusCaptured, statusCardVerified:
		return domain.AttemptCharged
	case statusDeclined, statusExpired:
		return domain.AttemptFailure
	case statusCanceled, statusVoided:
		return domain.AttemptVoided
	case statusPending:
		return domain.AttemptPending
	default:
		return domain.AttemptPending
	}
}

func (r paymentsResponse) canonical(captureMethod domain.CaptureMethod) domain.PaymentsResponse {
	out := domain.PaymentsResponse{
		Status:     attemptStatus(r.Status, captureMethod),
		ResourceID: r.ID,
		Reference:  r.Reference,
	}
	if link, ok := r.Links["redirect"]; ok && link.Href != "" {
		out.RedirectURL = pointers.Ptr(link.Href)
		out.Status = domain.AttemptAuthenticationPending
	}
	return out
}

// --- capture ---

type captureType string

const (
	captureFinal    captureType = "Final"
	captureNonFinal captureType = "NonFinal"
)

type paymentCaptureRequest struct {
	Amount              domain.MinorUnit `json:"amount"`
	CaptureType         captureType      `json:"capture_type"`
	Reference           string           `json:"reference,omitempty"`
	ProcessingChannelID string           `json:"processing_channel_id,omitempty"`
}

type paymentCaptureResponse struct {
	ActionID  string  `json:"action_id"`
	Reference *string `json:"reference"`
}

// canonical interprets the capture acknowledgment. Checkout acknowledges
// captures with 202; the money state is confirmed later via sync.
func (r paymentCaptureResponse) canonical(req domain.CaptureRequest, statusCode int) domain.PaymentsResponse {
	status := domain.AttemptCaptureInitiated
	if statusCode == 202 && !req.MultipleCapture {
		status = domain.AttemptCharged
	}
	return domain.PaymentsResponse{
		Status:     status,
		ResourceID: req.ConnectorTransactionID,
		Reference:  r.Reference,
	}
}

// --- void ---

type paymentVoidRequest struct {
	Reference string `json:"reference,omitempty"`
}

type paymentVoidResponse struct {
	ActionID  string  `json:"action_id"`
	Reference *string `json:"reference"`
}

func (r paymentVoidResponse) canonical(req domain.VoidRequest, statusCode int) domain.PaymentsResponse {
	status := domain.AttemptVoidFailed
	if statusCode == 202 {
		status = domain.AttemptVoided
	}
	return domain.PaymentsResponse{
		Status:     status,
		ResourceID: req.ConnectorTransactionID,
		Reference:  r.Reference,
	}
}

// --- actions (multi-capture sync, refund sync) ---

type actionType string

const (
	actionAuthorization actionType = "Authorization"
	actionCapture       actionType = "Capture"
	actionRefund        actionType = "Refund"
	actionVoid          actionType = "Void"
)

type actionResponse struct {
	ActionID  string           `json:"action_id"`
	Type      actionType       `json:"type"`
	Amount    domain.MinorUnit `json:"amount"`
	Approved  *bool            `json:"approved"`
	Reference *string          `json:"reference"`
}

func (a actionResponse) captureStatus() domain.AttemptStatus {
	if a.Approved != nil && *a.Approved {
		return domain.AttemptCharged
	}
	return domain.AttemptFailure
}

func (a actionResponse) refundStatus() domain.RefundStatus {
	if a.Approved != nil && *a.Approved {
		return domain.RefundSuccess
	}
	return domain.RefundFailure
}

func capturesSyncResponse(actions []actionResponse) domain.PaymentsResponse {
	captures := make([]domain.CaptureSyncResponse, 0, len(actions))
	resourceID := ""
	for _, a := range actions {
		if a.Type != actionCapture {
			continue
		}
		captures = append(captures, domain.CaptureSyncResponse{
			ActionID:  a.ActionID,
			Status:    a.captureStatus(),
			Amount:    a.Amount,
			Reference: a.Reference,
		})
		resourceID = a.ActionID
	}
	return domain.PaymentsResponse{
		Status:     domain.AttemptCharged,
		ResourceID: resourceID,
		Captures:   captures,
	}
}

// --- refunds ---

type refundRequest struct {
	Amount    domain.MinorUnit `json:"amount"`
	Reference string           `json:"reference,omitempty"`
}

type refundResponse struct {
	ActionID  string  `json:"action_id"`
	Reference *string `json:"reference"`
}

// canonical interprets the refund acknowledgment. A 202 means the refund
// was accepted for processing.
func (r refundResponse) canonical(statusCode int) domain.RefundsResponse {
	status := domain.RefundFailure
	if statusCode == 202 {
		status = domain.RefundSuccess
	}
	return domain.RefundsResponse{
		ConnectorRefundID: r.ActionID,
		Status:            status,
	}
}

// --- tokens ---

type tokenRequest struct {
	Type        string `json:"type"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv,omitempty"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func tokenRequestFrom(req domain.TokenizeRequest) (tokenRequest, error) {
	card := req.PaymentMethod.Card
	if card == nil {
		return tokenRequest{}, fmt.Errorf("%w: tokenization requires card data", connector.ErrResponseHandling)
	}
	return tokenRequest{
		Type:        "card",
		Number:      card.Number,
		ExpiryMonth: card.ExpiryMonth,
		ExpiryYear:  card.ExpiryYear,
		CVV:         card.CVC,
	}, nil
}

// --- dispute evidence ---

type evidenceRequest struct {
	ProofOfDeliveryOrServiceFile           *string `json:"proof_of_delivery_or_service_file,omitempty"`
	InvoiceOrReceiptFile                   *string `json:"invoice_or_receipt_file,omitempty"`
	InvoiceShowingDistinctTransactionsFile *string `json:"invoice_showing_distinct_transactions_file,omitempty"`
	CustomerCommunicationFile              *string `json:"customer_communication_file,omitempty"`
	RefundOrCancellationPolicyFile         *string `json:"refund_or_cancellation_policy_file,omitempty"`
	RecurringTransactionAgreementFile      *string `json:"recurring_transaction_agreement_file,omitempty"`
	AdditionalEvidenceFile                 *string `json:"additional_evidence_file,omitempty"`
}

func evidenceRequestFrom(req domain.SubmitEvidenceRequest) evidenceRequest {
	return evidenceRequest{
		ProofOfDeliveryOrServiceFile:           req.ShippingDocumentationFileID,
		InvoiceOrReceiptFile:                   req.ReceiptFileID,
		InvoiceShowingDistinctTransactionsFile: req.InvoiceShowingDistinctTransactionsFileID,
		CustomerCommunicationFile:              req.CustomerCommunicationFileID,
		RefundOrCancellationPolicyFile:         req.RefundPolicyFileID,
		RecurringTransactionAgreementFile:      req.RecurringTransactionAgreementFileID,
		AdditionalEvidenceFile:                 req.UncategorizedFileID,
	}
}

// --- files ---

type fileUploadResponse struct {
	FileID string `json:"id"`
}

func fileUploadContent(req domain.UploadFileRequest) connector.MultipartContent {
	return connector.MultipartContent{
		Fields: map[string]string{"purpose": string(req.Purpose)},
		Files: []connector.FormFile{{
			FieldName:   "file",
			FileName:    req.FileName,
			ContentType: req.FileType,
			Data:        req.File,
		}},
	}
}

// --- errors ---

type errorResponse struct {
	RequestID  *string   `json:"request_id"`
	ErrorType  *string   `json:"error_type"`
	ErrorCodes *[]string `json:"error_codes"`
}

// --- webhooks ---

type transactionType string

const (
	txnPaymentApproved         transactionType = "payment_approved"
	txnPaymentPending          transactionType = "payment_pending"
	txnPaymentDeclined         transactionType = "payment_declined"
	txnPaymentExpired          transactionType = "payment_expired"
	txnPaymentCanceled         transactionType = "payment_canceled"
	txnPaymentVoided           transactionType = "payment_voided"
	txnPaymentCaptured         transactionType = "payment_captured"
	txnPaymentCaptureDeclined  transactionType = "payment_capture_declined"
	txnPaymentCapturePending   transactionType = "payment_capture_pending"
	txnPaymentRefunded         transactionType = "payment_refunded"
	txnPaymentRefundDeclined   transactionType = "payment_refund_declined"
	txnPaymentRefundPending    transactionType = "payment_refund_pending"
	txnDisputeArbitrationLost  transactionType = "dispute_arbitration_lost"
	txnDisputeArbitrationWon   transactionType = "dispute_arbitration_won"
	txnDisputeCanceled         transactionType = "dispute_canceled"
	txnDisputeEvidenceRequired transactionType = "dispute_evidence_required"
	txnDisputeExpired          transactionType = "dispute_expired"
	txnDisputeLost             transactionType = "dispute_lost"
	txnDisputeResolved         transactionType = "dispute_resolved"
	txnDisputeWon              transactionType = "dispute_won"
)

func isChargebackEvent(t transactionType) bool {
	return strings.HasPrefix(string(t), "dispute_")
}

func isRefundEvent(t transactionType) bool {
	switch t {
	case txnPaymentRefunded, txnPaymentRefundDeclined, txnPaymentRefundPending:
		return true
	default:
		return false
	}
}

func eventTypeFrom(t transactionType) webhook.EventType {
	switch t {
	case txnPaymentApproved:
		return webhook.EventPaymentAuthorized
	case txnPaymentCaptured:
		return webhook.EventPaymentSucceeded
	case txnPaymentPending, txnPaymentCapturePending:
		return webhook.EventPaymentProcessing
	case txnPaymentDeclined, txnPaymentExpired, txnPaymentCaptureDeclined:
		return webhook.EventPaymentFailed
	case txnPaymentCanceled, txnPaymentVoided:
		return webhook.EventPaymentVoided
	case txnPaymentRefunded:
		return webhook.EventRefundSucceeded
	case txnPaymentRefundDeclined:
		return webhook.EventRefundFailed
	case txnDisputeEvidenceRequired:
		return webhook.EventDisputeOpened
	case txnDisputeExpired:
		return webhook.EventDisputeExpired
	case txnDisputeCanceled:
		return webhook.EventDisputeCancelled
	case txnDisputeResolved, txnDisputeWon, txnDisputeArbitrationWon:
		return webhook.EventDisputeWon
	case txnDisputeLost, txnDisputeArbitrationLost:
		return webhook.EventDisputeLost
	default:
		return webhook.EventNotSupported
	}
}

// disputeStageFrom derives the stage from the transaction type: arbitration
// events have moved past the dispute window, everything else is still in it.
func disputeStageFrom(t transactionType) domain.DisputeStage {
	switch t {
	case txnDisputeArbitrationLost, txnDisputeArbitrationWon:
		return domain.StagePreArbitration
	default:
		return domain.StageDispute
	}
}

type webhookData struct {
	ID                 string           `json:"id"`
	PaymentID          *string          `json:"payment_id"`
	ActionID           *string          `json:"action_id"`
	Reference          *string          `json:"reference"`
	Amount             domain.MinorUnit `json:"amount"`
	Currency           domain.Currency  `json:"currency"`
	ReasonCode         *string          `json:"reason_code"`
	EvidenceRequiredBy *time.Time       `json:"evidence_required_by"`
	Date               *time.Time       `json:"date"`
}

type webhookBody struct {
	Type      transactionType `json:"type"`
	CreatedOn *time.Time      `json:"created_on"`
	Data      webhookData     `json:"data"`
}

// webhookEventTypeBody decodes only the discriminant, for callers that do
// not need the data envelope.
type webhookEventTypeBody struct {
	Type transactionType `json:"type"`
}

// paymentEventObject is the canonical resource view for payment-class
// webhooks.
type paymentEventObject struct {
	PaymentID string            `json:"payment_id"`
	Reference *string           `json:"reference"`
	Amount    domain.MinorUnit  `json:"amount"`
	Currency  domain.Currency   `json:"currency"`
	Status    webhook.EventType `json:"status"`
}

// refundEventObject is the canonical resource view for refund-class
// webhooks.
type refundEventObject struct {
	ActionID  *string           `json:"action_id"`
	PaymentID *string           `json:"payment_id"`
	Reference *string           `json:"reference"`
	Amount    domain.MinorUnit  `json:"amount"`
	Currency  domain.Currency   `json:"currency"`
	Status    webhook.EventType `json:"status"`
}

func disputePayloadFrom(body webhookBody) webhook.DisputePayload {
	return webhook.DisputePayload{
		Amount:              fmt.Sprintf("%d", body.Data.Amount),
		Currency:            body.Data.Currency,
		DisputeStage:        disputeStageFrom(body.Type),
		ConnectorDisputeID:  body.Data.ID,
		ConnectorReasonCode: body.Data.ReasonCode,
		ChallengeRequiredBy: body.Data.EvidenceRequiredBy,
		ConnectorStatus:     string(body.Type),
		CreatedAt:           body.CreatedOn,
		UpdatedAt:           body.Data.Date,
	}
}
